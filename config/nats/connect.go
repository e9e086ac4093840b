package nats

import (
	"context"
	"fmt"

	"lead-notification-srv/config"
	"lead-notification-srv/pkg/log"

	"github.com/nats-io/nats.go"
)

// Connect dials NATS, or returns nil when no URL is configured.
func Connect(ctx context.Context, cfg config.NATSConfig, l log.Logger) (*nats.Conn, error) {
	if cfg.URL == "" {
		return nil, nil
	}
	nc, err := nats.Connect(cfg.URL,
		nats.Name(cfg.Name),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				l.Warnf(ctx, "config.nats: disconnected: %v", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			l.Infof(ctx, "config.nats: reconnected to %s", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}
