package http

import (
	"lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/log"

	gorilla "github.com/gorilla/websocket"
)

// Config tunes the upgrader.
type Config struct {
	ReadBufferSize  int
	WriteBufferSize int
	// AllowedOrigins limits the Origin header on upgrades. Empty allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	l        log.Logger
	uc       websocket.UseCase
	upgrader gorilla.Upgrader
}

func New(l log.Logger, uc websocket.UseCase, cfg Config) *Handler {
	return &Handler{
		l:  l,
		uc: uc,
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
	}
}
