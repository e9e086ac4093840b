package usecase

import (
	"context"

	"lead-notification-srv/internal/model"
)

func (uc *implUseCase) SendToUser(ctx context.Context, userID string, n model.Notification) bool {
	conns := uc.hub.userConnections(userID)
	if len(conns) == 0 {
		return false
	}

	data, err := notificationFrame(n)
	if err != nil {
		uc.l.Errorf(ctx, "internal.websocket.usecase.SendToUser.Marshal: %v", err)
		uc.hub.totalMessagesFailed.Add(int64(len(conns)))
		return false
	}

	return uc.hub.deliver(conns, data) > 0
}

func (uc *implUseCase) BroadcastToRole(ctx context.Context, role model.Role, n model.Notification) int {
	conns := uc.hub.openConnections(func(c *connection) bool { return c.role == role })
	if len(conns) == 0 {
		return 0
	}

	data, err := notificationFrame(n)
	if err != nil {
		uc.l.Errorf(ctx, "internal.websocket.usecase.BroadcastToRole.Marshal: %v", err)
		uc.hub.totalMessagesFailed.Add(int64(len(conns)))
		return 0
	}

	return uc.hub.deliver(conns, data)
}
