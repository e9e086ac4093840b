package repository

import (
	"context"
	"errors"

	"lead-notification-srv/internal/model"
)

var ErrNotFound = errors.New("notification not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, opts CreateOptions) (model.Notification, error)
	List(ctx context.Context, opts ListOptions) ([]model.Notification, error)
	CountUnread(ctx context.Context, userID string) (int, error)
	MarkRead(ctx context.Context, opts MarkReadOptions) (model.Notification, error)
	MarkAllRead(ctx context.Context, userID string) (int64, error)
}
