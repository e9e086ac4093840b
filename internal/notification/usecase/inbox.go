package usecase

import (
	"context"
	"errors"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/internal/notification/repository"
)

func (uc *implUseCase) List(ctx context.Context, input notification.ListInput) ([]model.Notification, error) {
	ns, err := uc.repo.List(ctx, repository.ListOptions{UserID: input.UserID, Limit: input.Limit})
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.List: %v", err)
		return nil, err
	}
	return ns, nil
}

func (uc *implUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	count, err := uc.repo.CountUnread(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.UnreadCount: %v", err)
		return 0, err
	}
	return count, nil
}

func (uc *implUseCase) MarkRead(ctx context.Context, input notification.MarkReadInput) (model.Notification, error) {
	n, err := uc.repo.MarkRead(ctx, repository.MarkReadOptions{ID: input.ID, UserID: input.UserID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Notification{}, notification.ErrNotificationNotFound
		}
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkRead: %v", err)
		return model.Notification{}, err
	}
	return n, nil
}

func (uc *implUseCase) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	n, err := uc.repo.MarkAllRead(ctx, userID)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.MarkAllRead: %v", err)
		return 0, err
	}
	return n, nil
}
