package postgre

import (
	"testing"

	"lead-notification-srv/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.PostgresConfig
		want string
	}{
		{
			name: "explicit ssl mode",
			cfg:  config.PostgresConfig{Host: "db", Port: 5432, User: "app", Password: "pw", DBName: "leads", SSLMode: "require"},
			want: "host=db port=5432 user=app password=pw dbname=leads sslmode=require",
		},
		{
			name: "ssl mode defaults to disable",
			cfg:  config.PostgresConfig{Host: "localhost", Port: 5433, User: "u", DBName: "d"},
			want: "host=localhost port=5433 user=u password= dbname=d sslmode=disable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DSN(tt.cfg))
		})
	}
}
