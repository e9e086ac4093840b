package jwt

import (
	"fmt"
	"time"
)

// Manager issues and verifies HS256 service tokens.
type Manager interface {
	GenerateToken(subject, scope string) (string, error)
	VerifyToken(token string) (*Claims, error)
}

// New validates cfg and returns a Manager.
func New(cfg Config) (Manager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, fmt.Errorf("jwt: secret key must be at least %d characters long, got %d", MinSecretKeyLen, len(cfg.SecretKey))
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = time.Hour
	}
	return &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       ttl,
	}, nil
}
