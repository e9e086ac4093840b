package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lead-notification-srv/config"
	"lead-notification-srv/pkg/jwt"
	"lead-notification-srv/pkg/log"
	pkgRedis "lead-notification-srv/pkg/redis"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWT(t *testing.T) jwt.Manager {
	t.Helper()
	m, err := jwt.New(jwt.Config{SecretKey: "0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	return m
}

func testConfig(t *testing.T) (Config, sqlmock.Sqlmock) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return Config{
		Server:     config.HTTPServerConfig{Port: 8080, Mode: gin.TestMode},
		Session:    config.SessionConfig{Store: config.SessionStorePostgres, Table: "sessions"},
		DB:         db,
		JWTManager: testJWT(t),
	}, mock
}

func TestNewValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "postgres session store", mutate: func(*Config) {}},
		{name: "missing port", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: true},
		{name: "missing db", mutate: func(c *Config) { c.DB = nil }, wantErr: true},
		{name: "missing jwt manager", mutate: func(c *Config) { c.JWTManager = nil }, wantErr: true},
		{name: "redis session store without redis", mutate: func(c *Config) { c.Session.Store = config.SessionStoreRedis }, wantErr: true},
		{name: "subscriber without redis", mutate: func(c *Config) { c.Subscriber.Enabled = true }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, _ := testConfig(t)
			tt.mutate(&cfg)

			srv, err := New(log.NewNop(), cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, srv)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, srv)
		})
	}
}

func TestMapHandlersRegistersRoutes(t *testing.T) {
	cfg, _ := testConfig(t)
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())

	routes := map[string]bool{}
	for _, r := range srv.gin.Routes() {
		routes[r.Method+" "+r.Path] = true
	}
	for _, want := range []string{
		"GET /health",
		"GET /ready",
		"GET /live",
		"GET /metrics",
		"GET /ws/notifications",
		"POST /internal/api/v1/events/leads-created",
		"POST /internal/api/v1/events/lead-assigned",
		"POST /internal/api/v1/notifications/broadcast",
		"GET /api/notifications",
		"GET /api/notifications/unread-count",
		"POST /api/notifications/mark-all-read",
		"POST /api/notifications/:id/read",
	} {
		assert.True(t, routes[want], want)
	}
	assert.NotNil(t, srv.wsUC)
	assert.NotNil(t, srv.dispatcher)
	assert.Nil(t, srv.redisSub)
	assert.Nil(t, srv.natsSub)
}

func TestHealthCheck(t *testing.T) {
	mr := miniredis.RunT(t)
	redis := pkgRedis.NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	tests := []struct {
		name       string
		withRedis  bool
		pingErr    error
		wantStatus int
		wantRedis  string
	}{
		{name: "healthy without redis", wantStatus: http.StatusOK, wantRedis: "disabled"},
		{name: "healthy with redis", withRedis: true, wantStatus: http.StatusOK, wantRedis: "connected"},
		{name: "postgres down", pingErr: errors.New("connection refused"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, mock := testConfig(t)
			if tt.withRedis {
				cfg.Redis = redis
			}
			mock.ExpectPing().WillReturnError(tt.pingErr)

			srv, err := New(log.NewNop(), cfg)
			require.NoError(t, err)
			require.NoError(t, srv.mapHandlers())

			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.NoError(t, mock.ExpectationsWereMet())

			if tt.wantStatus != http.StatusOK {
				return
			}
			var body struct {
				Data map[string]any `json:"data"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "healthy", body.Data["status"])
			assert.Equal(t, tt.wantRedis, body.Data["redis"])
			assert.EqualValues(t, 0, body.Data["active_connections"])
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	cfg, _ := testConfig(t)
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	require.NoError(t, srv.mapHandlers())

	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")
	assert.Contains(t, w.Body.String(), "lead_notification_ws_active_connections 0")
	assert.Contains(t, w.Body.String(), "# TYPE lead_notification_dispatch_enqueued_total counter")
}
