package middleware

import (
	"lead-notification-srv/internal/identity"
	"lead-notification-srv/pkg/jwt"
	"lead-notification-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager jwt.Manager
	resolver   identity.Resolver
}

func New(l log.Logger, jwtManager jwt.Manager, resolver identity.Resolver) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		resolver:   resolver,
	}
}
