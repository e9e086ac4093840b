package discord

import (
	"context"
	"errors"

	"lead-notification-srv/pkg/log"
)

var (
	ErrWebhookRequired = errors.New("discord: webhook id and token are required")
)

// IDiscord posts operational reports to a Discord webhook.
type IDiscord interface {
	ReportBug(ctx context.Context, message string) error
	SendError(ctx context.Context, title, description string, err error) error
	SendWarning(ctx context.Context, title, description string) error
	Close() error
}

// New builds a webhook client. cfg zero values take the package defaults.
func New(l log.Logger, webhookID, webhookToken string, cfg Config) (IDiscord, error) {
	if webhookID == "" || webhookToken == "" {
		return nil, ErrWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.RetryDelay == 0 {
		cfg.RetryDelay = DefaultRetryDelay
	}
	if cfg.Username == "" {
		cfg.Username = DefaultUsername
	}
	return &discordImpl{
		l:      l,
		id:     webhookID,
		token:  webhookToken,
		config: cfg,
		client: newHTTPClient(cfg.Timeout),
	}, nil
}
