package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"net/http"
	"net/url"
	"strings"

	"lead-notification-srv/internal/identity"
)

const signedPrefix = "s:"

// sessionIDFromHeader extracts the session id from a raw Cookie header.
// Signed values look like "s:<sid>.<signature>" after URL-unescaping.
func sessionIDFromHeader(rawHeader, name, secret string) (string, error) {
	if strings.TrimSpace(rawHeader) == "" {
		return "", identity.ErrMissingSession
	}
	cookies, err := http.ParseCookie(rawHeader)
	if err != nil {
		return "", identity.ErrMissingSession
	}

	var value string
	for _, c := range cookies {
		if c.Name == name {
			value = c.Value
			break
		}
	}
	if value == "" {
		return "", identity.ErrMissingSession
	}
	if unescaped, err := url.QueryUnescape(value); err == nil {
		value = unescaped
	}

	signed := strings.HasPrefix(value, signedPrefix)
	value = strings.TrimPrefix(value, signedPrefix)
	sid, sig, hasSig := strings.Cut(value, ".")
	if sid == "" {
		return "", identity.ErrMissingSession
	}

	if secret == "" {
		return sid, nil
	}
	if !signed || !hasSig || !validSignature(sid, sig, secret) {
		return "", identity.ErrInvalidSignature
	}
	return sid, nil
}

func validSignature(sid, sig, secret string) bool {
	return hmac.Equal([]byte(sign(sid, secret)), []byte(sig))
}

// sign produces the unpadded base64 HMAC-SHA256 that signed session cookies carry.
func sign(sid, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(sid))
	return base64.RawStdEncoding.EncodeToString(mac.Sum(nil))
}
