package response

import "lead-notification-srv/pkg/errors"

// Resp is the JSON envelope every HTTP endpoint answers with.
type Resp struct {
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Errors    any    `json:"errors,omitempty"`
}

// ErrorMapping maps domain errors to their HTTP rendering.
type ErrorMapping map[error]*errors.HTTPError
