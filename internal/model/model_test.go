package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"support_assistant", RoleSupportAssistant},
		{"", RoleSupportAssistant},
		{"ADMIN", RoleSupportAssistant},
		{"superuser", RoleSupportAssistant},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseRole(tt.in))
		})
	}
}

func TestNotificationWireShape(t *testing.T) {
	n := Notification{
		ID:        "n-1",
		UserID:    "u-1",
		Type:      NotificationTypeLeadAssigned,
		Title:     "New Lead Assigned",
		Message:   "m",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	raw, err := json.Marshal(n)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t,
		[]string{"id", "userId", "type", "title", "message", "leadId", "read", "createdAt"},
		keys(fields))
	assert.Nil(t, fields["leadId"])
	assert.Equal(t, false, fields["read"])
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
