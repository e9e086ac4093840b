package usecase

import (
	"time"

	campaignRepo "lead-notification-srv/internal/campaign/repository"
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/internal/notification/repository"
	userRepo "lead-notification-srv/internal/user/repository"
	"lead-notification-srv/pkg/log"
)

type implUseCase struct {
	l         log.Logger
	repo      repository.Repository
	users     userRepo.Repository
	campaigns campaignRepo.Repository
	notifier  notification.Notifier
	clock     func() time.Time
}

// New wires the producer hook. notifier is usually the websocket gateway.
func New(
	l log.Logger,
	repo repository.Repository,
	users userRepo.Repository,
	campaigns campaignRepo.Repository,
	notifier notification.Notifier,
) notification.UseCase {
	return &implUseCase{
		l:         l,
		repo:      repo,
		users:     users,
		campaigns: campaigns,
		notifier:  notifier,
		clock:     time.Now,
	}
}
