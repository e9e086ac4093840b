package errors

import "net/http"

const (
	MessageUnauthorized       = "Unauthorized"
	MessageServiceUnavailable = "Service unavailable"
)

// NewHTTPError returns a new HTTPError. A zero statusCode defaults to 400.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnauthorizedHTTPError returns a 401 error.
func NewUnauthorizedHTTPError() *HTTPError {
	return &HTTPError{
		Code:       http.StatusUnauthorized,
		Message:    MessageUnauthorized,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewServiceUnavailableHTTPError returns a 503 error with the given message.
func NewServiceUnavailableHTTPError(message string) *HTTPError {
	if message == "" {
		message = MessageServiceUnavailable
	}
	return &HTTPError{
		Code:       http.StatusServiceUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
	}
}

func (e *HTTPError) Error() string {
	return e.Message
}
