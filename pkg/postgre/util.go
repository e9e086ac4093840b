package postgres

import (
	"fmt"

	"github.com/google/uuid"
)

// IsUUID returns ErrInvalidUUID unless u parses as a UUID.
func IsUUID(u string) error {
	if u == "" {
		return fmt.Errorf("%w: UUID cannot be empty", ErrInvalidUUID)
	}
	if _, err := uuid.Parse(u); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
	}
	return nil
}

// NullString maps "" to a SQL NULL argument.
func NullString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
