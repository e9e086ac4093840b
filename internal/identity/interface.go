package identity

import (
	"context"

	"lead-notification-srv/internal/model"
)

// Identity is who a connection or request belongs to. It is resolved once and
// not refreshed, so a role change elsewhere only applies after reconnecting.
type Identity struct {
	UserID string
	Role   model.Role
}

// Resolver turns a raw Cookie header into an Identity.
//
//go:generate mockery --name Resolver
type Resolver interface {
	ResolveIdentity(ctx context.Context, rawCookieHeader string) (Identity, error)
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(ctx context.Context, rawCookieHeader string) (Identity, error)

func (f ResolverFunc) ResolveIdentity(ctx context.Context, rawCookieHeader string) (Identity, error) {
	return f(ctx, rawCookieHeader)
}
