package repository

import (
	"context"
	"errors"

	"lead-notification-srv/internal/model"
)

var ErrNotFound = errors.New("user not found")

//go:generate mockery --name Repository
type Repository interface {
	Detail(ctx context.Context, id string) (model.User, error)
	ListByRole(ctx context.Context, role model.Role) ([]model.User, error)
}
