package middleware

import (
	"strings"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// ServiceSubjectKey holds the calling service's token subject in the gin context.
const ServiceSubjectKey = "service_subject"

// InternalAuth validates the service JWT carried as a Bearer token.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			m.l.Warnf(c.Request.Context(), "Missing Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		const bearerPrefix = "Bearer "
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			m.l.Warnf(c.Request.Context(), "Invalid Authorization header format | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		tokenString := strings.TrimSpace(authHeader[len(bearerPrefix):])
		if tokenString == "" {
			m.l.Warnf(c.Request.Context(), "Empty token in Authorization header | Path: %s", c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := m.jwtManager.VerifyToken(tokenString)
		if err != nil {
			m.l.Warnf(c.Request.Context(), "Token verification failed: %v | Path: %s", err, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(ServiceSubjectKey, claims.Subject)
		c.Next()
	}
}

// SessionAuth resolves the session cookie into an identity.Identity on the request context.
func (m Middleware) SessionAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		id, err := m.resolver.ResolveIdentity(ctx, c.GetHeader("Cookie"))
		if err != nil {
			if identity.IsUnauthorized(err) {
				m.l.Debugf(ctx, "Session rejected: %v | Path: %s", err, c.Request.URL.Path)
			} else {
				m.l.Errorf(ctx, "Session lookup failed: %v | Path: %s", err, c.Request.URL.Path)
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(identity.SetToContext(ctx, id))
		c.Next()
	}
}
