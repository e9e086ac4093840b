package session

import (
	"context"
	"time"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	"lead-notification-srv/pkg/log"
	pkgRedis "lead-notification-srv/pkg/redis"

	"github.com/pkg/errors"
)

const DefaultRedisPrefix = "sess:"

type redisStore struct {
	l      log.Logger
	redis  pkgRedis.IRedis
	prefix string
	clock  func() time.Time
}

// NewRedisStore reads JSON sessions stored under prefix+sid. Redis TTLs
// expire keys; an expired cookie date is still honored.
func NewRedisStore(l log.Logger, redis pkgRedis.IRedis, prefix string) Store {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &redisStore{
		l:      l,
		redis:  redis,
		prefix: prefix,
		clock:  time.Now,
	}
}

func (s *redisStore) Get(ctx context.Context, sid string) (model.Session, error) {
	raw, err := s.redis.Get(ctx, s.prefix+sid)
	if err != nil {
		if pkgRedis.IsNil(err) {
			return model.Session{}, identity.ErrSessionNotFound
		}
		s.l.Errorf(ctx, "internal.identity.session.redisStore.Get: %v", err)
		return model.Session{}, errors.Wrap(err, "session: redis get")
	}

	data, err := decodeSessionData([]byte(raw))
	if err != nil {
		s.l.Warnf(ctx, "internal.identity.session.redisStore.Get: %v", err)
		return model.Session{}, identity.ErrSessionNotFound
	}

	sess := model.Session{SID: sid, UserID: data.Passport.User}
	if data.Cookie.Expires != nil {
		if !data.Cookie.Expires.After(s.clock()) {
			return model.Session{}, identity.ErrSessionNotFound
		}
		sess.Expire = *data.Cookie.Expires
	}
	return sess, nil
}
