package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

type Config struct {
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Storage Configuration
	Postgres PostgresConfig
	Redis    RedisConfig

	// Event Transports
	NATS       NATSConfig
	Subscriber SubscriberConfig

	// Gateway Configuration
	WebSocket WebSocketConfig

	// Authentication Configuration
	Session     SessionConfig
	InternalJWT InternalJWTConfig

	// Producer Configuration
	Dispatcher DispatcherConfig

	// Monitoring Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for environment-aware features
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host            string        `env:"HOST" envDefault:"0.0.0.0"`
	Port            int           `env:"APP_PORT" envDefault:"8080"`
	Mode            string        `env:"API_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	AllowedOrigins  []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"leads"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// RedisConfig is the configuration for Redis. An empty host disables redis.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// SubscriberConfig names the redis pub/sub channels carrying lead events.
type SubscriberConfig struct {
	Enabled             bool   `env:"REDIS_SUBSCRIBER_ENABLED" envDefault:"false"`
	LeadsCreatedChannel string `env:"REDIS_LEADS_CREATED_CHANNEL" envDefault:"leads:created"`
	LeadAssignedChannel string `env:"REDIS_LEAD_ASSIGNED_CHANNEL" envDefault:"leads:assigned"`
}

// NATSConfig is the configuration for the NATS event subscriber. An empty URL disables it.
type NATSConfig struct {
	URL                 string        `env:"NATS_URL"`
	Name                string        `env:"NATS_CLIENT_NAME" envDefault:"lead-notification-srv"`
	QueueGroup          string        `env:"NATS_QUEUE_GROUP" envDefault:"lead-notification-srv"`
	LeadsCreatedSubject string        `env:"NATS_LEADS_CREATED_SUBJECT" envDefault:"leads.created"`
	LeadAssignedSubject string        `env:"NATS_LEAD_ASSIGNED_SUBJECT" envDefault:"leads.assigned"`
	ReconnectWait       time.Duration `env:"NATS_RECONNECT_WAIT" envDefault:"2s"`
	MaxReconnects       int           `env:"NATS_MAX_RECONNECTS" envDefault:"-1"`
}

// WebSocketConfig is the configuration for WebSocket connections
type WebSocketConfig struct {
	PingInterval    time.Duration `env:"WS_PING_INTERVAL" envDefault:"30s"`
	WriteWait       time.Duration `env:"WS_WRITE_WAIT" envDefault:"10s"`
	MaxMessageSize  int64         `env:"WS_MAX_MESSAGE_SIZE" envDefault:"4096"`
	ReadBufferSize  int           `env:"WS_READ_BUFFER_SIZE" envDefault:"1024"`
	WriteBufferSize int           `env:"WS_WRITE_BUFFER_SIZE" envDefault:"1024"`
	SendBufferSize  int           `env:"WS_SEND_BUFFER_SIZE" envDefault:"256"`
	MaxConnections  int           `env:"WS_MAX_CONNECTIONS" envDefault:"10000"`
	AllowedOrigins  []string      `env:"WS_ALLOWED_ORIGINS" envSeparator:","`
}

// SessionConfig describes the session cookie and the store backing it.
type SessionConfig struct {
	CookieName  string `env:"SESSION_COOKIE_NAME" envDefault:"connect.sid"`
	Secret      string `env:"SESSION_SECRET"`
	Store       string `env:"SESSION_STORE" envDefault:"postgres"`
	Table       string `env:"SESSION_TABLE" envDefault:"sessions"`
	RedisPrefix string `env:"SESSION_REDIS_PREFIX" envDefault:"sess:"`
}

// InternalJWTConfig secures the internal event API.
type InternalJWTConfig struct {
	SecretKey string `env:"INTERNAL_JWT_SECRET"`
	Issuer    string `env:"INTERNAL_JWT_ISSUER"`
}

// DispatcherConfig sizes the fire-and-forget notification queue.
type DispatcherConfig struct {
	Workers     int           `env:"DISPATCH_WORKERS" envDefault:"4"`
	QueueSize   int           `env:"DISPATCH_QUEUE_SIZE" envDefault:"1024"`
	TaskTimeout time.Duration `env:"DISPATCH_TASK_TIMEOUT" envDefault:"10s"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: parse env: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("config: APP_PORT must be positive")
	}
	if cfg.Postgres.Host == "" || cfg.Postgres.DBName == "" {
		return fmt.Errorf("config: POSTGRES_HOST and POSTGRES_DB are required")
	}
	switch cfg.Session.Store {
	case SessionStorePostgres:
	case SessionStoreRedis:
		if cfg.Redis.Host == "" {
			return fmt.Errorf("config: REDIS_HOST is required when SESSION_STORE=redis")
		}
	default:
		return fmt.Errorf("config: unknown SESSION_STORE %q", cfg.Session.Store)
	}
	if cfg.Subscriber.Enabled && cfg.Redis.Host == "" {
		return fmt.Errorf("config: REDIS_HOST is required when REDIS_SUBSCRIBER_ENABLED=true")
	}
	if len(cfg.InternalJWT.SecretKey) < 32 {
		return fmt.Errorf("config: INTERNAL_JWT_SECRET must be at least 32 characters")
	}
	if cfg.WebSocket.PingInterval <= 0 {
		return fmt.Errorf("config: WS_PING_INTERVAL must be positive")
	}
	if cfg.Dispatcher.Workers <= 0 || cfg.Dispatcher.QueueSize <= 0 {
		return fmt.Errorf("config: DISPATCH_WORKERS and DISPATCH_QUEUE_SIZE must be positive")
	}
	return nil
}
