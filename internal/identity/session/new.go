package session

import (
	"context"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	userRepo "lead-notification-srv/internal/user/repository"
	"lead-notification-srv/pkg/log"
)

const DefaultCookieName = "connect.sid"

// Store looks up a session by id. Unknown and expired sessions yield
// identity.ErrSessionNotFound.
type Store interface {
	Get(ctx context.Context, sid string) (model.Session, error)
}

// Config describes the session cookie.
type Config struct {
	CookieName string
	// Secret enables signature verification of "s:<sid>.<sig>" cookies when set.
	Secret string
}

type implResolver struct {
	l     log.Logger
	store Store
	users userRepo.Repository
	cfg   Config
}

// New returns a Resolver backed by a session store and the users table.
func New(l log.Logger, store Store, users userRepo.Repository, cfg Config) identity.Resolver {
	if cfg.CookieName == "" {
		cfg.CookieName = DefaultCookieName
	}
	return &implResolver{
		l:     l,
		store: store,
		users: users,
		cfg:   cfg,
	}
}
