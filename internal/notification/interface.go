package notification

import (
	"context"

	"lead-notification-srv/internal/model"
)

// UseCase turns lead writes into notification rows and serves the inbox.
//
//go:generate mockery --name UseCase
type UseCase interface {
	NotifyNewLead(ctx context.Context, input NewLeadInput) (NotifyOutput, error)
	NotifyAssignment(ctx context.Context, input AssignmentInput) (NotifyOutput, error)

	List(ctx context.Context, input ListInput) ([]model.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, input MarkReadInput) (model.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)

	// Broadcast pushes an ephemeral notification to every open connection of a role.
	Broadcast(ctx context.Context, input BroadcastInput) (int, error)
}

// Dispatcher runs NotifyNewLead and NotifyAssignment off the caller's path.
// Enqueue never blocks, and task failures never reach the caller.
type Dispatcher interface {
	Start()
	Shutdown(ctx context.Context) error
	LeadsCreated(ctx context.Context, input NewLeadInput) error
	LeadAssigned(ctx context.Context, input AssignmentInput) error
	Stats() DispatcherStats
}

// Notifier delivers notifications to live connections.
type Notifier interface {
	SendToUser(ctx context.Context, userID string, n model.Notification) bool
	BroadcastToRole(ctx context.Context, role model.Role, n model.Notification) int
}
