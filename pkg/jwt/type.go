package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// MinSecretKeyLen is the shortest accepted HMAC secret.
const MinSecretKeyLen = 32

// Config holds JWT configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// Claims are carried by internal service tokens. Subject names the calling service.
type Claims struct {
	Scope string `json:"scope,omitempty"`
	jwt.RegisteredClaims
}

type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
}
