package identity

import "errors"

var (
	ErrMissingSession   = errors.New("session cookie missing")
	ErrInvalidSignature = errors.New("session cookie signature invalid")
	ErrSessionNotFound  = errors.New("session not found or expired")
	ErrNotAuthenticated = errors.New("session carries no user")
	ErrUserNotFound     = errors.New("session user not found")
)

// IsUnauthorized reports whether err means the caller has no valid identity,
// as opposed to an infrastructure failure while resolving it.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrMissingSession) ||
		errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrSessionNotFound) ||
		errors.Is(err, ErrNotAuthenticated) ||
		errors.Is(err, ErrUserNotFound)
}
