package errors

// HTTPError is an error that knows how it should be rendered over HTTP.
// Code is the service-level error code placed in the response envelope.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
}

// ValidationError is an error with a field and messages.
type ValidationError struct {
	Code     int      `json:"code"`
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

// ValidationErrorCollector collects multiple validation errors.
type ValidationErrorCollector struct {
	errors []*ValidationError
}
