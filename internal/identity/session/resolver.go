package session

import (
	"context"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	userRepo "lead-notification-srv/internal/user/repository"

	"github.com/pkg/errors"
)

func (r *implResolver) ResolveIdentity(ctx context.Context, rawCookieHeader string) (identity.Identity, error) {
	sid, err := sessionIDFromHeader(rawCookieHeader, r.cfg.CookieName, r.cfg.Secret)
	if err != nil {
		return identity.Identity{}, err
	}

	sess, err := r.store.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, identity.ErrSessionNotFound) {
			return identity.Identity{}, err
		}
		return identity.Identity{}, errors.Wrap(err, "session.ResolveIdentity: store")
	}
	if sess.UserID == "" {
		return identity.Identity{}, identity.ErrNotAuthenticated
	}

	user, err := r.users.Detail(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			return identity.Identity{}, identity.ErrUserNotFound
		}
		return identity.Identity{}, errors.Wrap(err, "session.ResolveIdentity: user")
	}

	return identity.Identity{
		UserID: user.ID,
		Role:   model.ParseRole(string(user.Role)),
	}, nil
}
