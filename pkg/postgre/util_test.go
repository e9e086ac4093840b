package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"valid", "3f1c2a9e-6c1b-4b7e-9a59-6d9f3c3b8a11", false},
		{"empty", "", true},
		{"garbage", "not-a-uuid", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := IsUUID(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidUUID)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNullString(t *testing.T) {
	empty, lead := "", "lead-1"
	assert.Nil(t, NullString(nil))
	assert.Nil(t, NullString(&empty))
	assert.Equal(t, "lead-1", NullString(&lead))
}
