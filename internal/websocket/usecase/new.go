package usecase

import (
	"context"
	"time"

	"lead-notification-srv/internal/identity"
	ws "lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/log"
)

const (
	DefaultPingInterval   = 30 * time.Second
	DefaultWriteWait      = 10 * time.Second
	DefaultMaxMessageSize = 4096
	DefaultSendBufferSize = 256
	DefaultMaxConnections = 10000
)

// Config tunes the hub and its connections.
type Config struct {
	PingInterval   time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
	SendBufferSize int
	// MaxConnections caps open connections across all users. Zero disables the cap.
	MaxConnections int
}

func (c Config) withDefaults() Config {
	if c.PingInterval <= 0 {
		c.PingInterval = DefaultPingInterval
	}
	if c.WriteWait <= 0 {
		c.WriteWait = DefaultWriteWait
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = DefaultMaxMessageSize
	}
	if c.SendBufferSize <= 0 {
		c.SendBufferSize = DefaultSendBufferSize
	}
	return c
}

// implUseCase implements websocket.UseCase.
type implUseCase struct {
	l        log.Logger
	resolver identity.Resolver
	hub      *hub
	cfg      Config
}

// New creates the gateway. Run must be started before connections are accepted.
func New(l log.Logger, resolver identity.Resolver, cfg Config) ws.UseCase {
	cfg = cfg.withDefaults()
	return &implUseCase{
		l:        l,
		resolver: resolver,
		hub:      newHub(l, cfg),
		cfg:      cfg,
	}
}

func (uc *implUseCase) Run() {
	uc.hub.run()
}

func (uc *implUseCase) Shutdown(ctx context.Context) error {
	return uc.hub.shutdown(ctx)
}

func (uc *implUseCase) GetStats(ctx context.Context) (ws.HubStats, error) {
	return uc.hub.stats(), nil
}
