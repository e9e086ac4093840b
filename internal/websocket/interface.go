package websocket

import (
	"context"

	"lead-notification-srv/internal/model"
)

// UseCase is the connection registry and push gateway.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Run drives the registry loop until Shutdown is called.
	Run()
	Shutdown(ctx context.Context) error

	// Accept authenticates a connection attempt and, on success, upgrades and registers it.
	Accept(ctx context.Context, input AcceptInput) (ConnectionInfo, error)

	// SendToUser pushes n to every open connection of userID. It reports whether
	// at least one connection accepted the frame.
	SendToUser(ctx context.Context, userID string, n model.Notification) bool
	// BroadcastToRole pushes n to every open connection of the role and returns
	// how many accepted it.
	BroadcastToRole(ctx context.Context, role model.Role, n model.Notification) int

	GetStats(ctx context.Context) (HubStats, error)
}
