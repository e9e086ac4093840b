package repository

import (
	"context"
	"errors"

	"lead-notification-srv/internal/model"
)

var ErrNotFound = errors.New("campaign not found")

type Repository interface {
	Detail(ctx context.Context, id string) (model.Campaign, error)
}
