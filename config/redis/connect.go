package redis

import (
	"fmt"

	"lead-notification-srv/config"
	pkgRedis "lead-notification-srv/pkg/redis"
)

// Connect returns a ready redis client, or nil when no host is configured.
func Connect(cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	if cfg.Host == "" {
		return nil, nil
	}
	client, err := pkgRedis.New(pkgRedis.RedisConfig{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}
