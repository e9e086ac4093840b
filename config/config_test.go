package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INTERNAL_JWT_SECRET", strings.Repeat("s", 32))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, 30*time.Second, cfg.WebSocket.PingInterval)
	assert.Equal(t, "connect.sid", cfg.Session.CookieName)
	assert.Equal(t, SessionStorePostgres, cfg.Session.Store)
	assert.Equal(t, "leads:created", cfg.Subscriber.LeadsCreatedChannel)
	assert.Equal(t, 4, cfg.Dispatcher.Workers)
	assert.Empty(t, cfg.NATS.URL)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"short internal secret", map[string]string{"INTERNAL_JWT_SECRET": "short"}},
		{"redis store without redis", map[string]string{"SESSION_STORE": "redis"}},
		{"unknown store", map[string]string{"SESSION_STORE": "memcached"}},
		{"subscriber without redis", map[string]string{"REDIS_SUBSCRIBER_ENABLED": "true"}},
		{"zero workers", map[string]string{"DISPATCH_WORKERS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("INTERNAL_JWT_SECRET", strings.Repeat("s", 32))
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
