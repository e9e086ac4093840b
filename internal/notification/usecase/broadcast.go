package usecase

import (
	"context"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification"

	"github.com/google/uuid"
)

func (uc *implUseCase) Broadcast(ctx context.Context, input notification.BroadcastInput) (int, error) {
	if !input.Role.IsValid() {
		return 0, notification.ErrInvalidRole
	}
	if !input.Type.IsValid() {
		return 0, notification.ErrInvalidType
	}
	if input.Title == "" {
		return 0, notification.ErrTitleRequired
	}

	n := model.Notification{
		ID:        uuid.NewString(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		LeadID:    input.LeadID,
		CreatedAt: uc.clock(),
	}
	count := uc.notifier.BroadcastToRole(ctx, input.Role, n)

	uc.l.Infof(ctx, "internal.notification.usecase.Broadcast: role=%s connections=%d", input.Role, count)
	return count, nil
}
