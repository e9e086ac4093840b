package response

const (
	DefaultStackTraceDepth  = 32
	DefaultErrorMessage     = "Something went wrong"
	MessageSuccess          = "Success"
	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500
	DiscordMaxMessageLen    = 1900
)

// redactedHeaders are never copied into bug reports.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}
