package http

import (
	"lead-notification-srv/internal/identity"
	pkgErrors "lead-notification-srv/pkg/errors"
	"lead-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

func (h *Handler) bindJSON(c *gin.Context, req any) error {
	if err := c.ShouldBindJSON(req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.bindJSON: %v", err)
		return pkgErrors.NewHTTPError(response.ValidationErrorCode, err.Error(), 0)
	}
	return nil
}

func (h *Handler) bindQuery(c *gin.Context, req any) error {
	if err := c.ShouldBindQuery(req); err != nil {
		h.l.Warnf(c.Request.Context(), "internal.notification.delivery.http.bindQuery: %v", err)
		return pkgErrors.NewHTTPError(response.ValidationErrorCode, err.Error(), 0)
	}
	return nil
}

// currentIdentity returns the identity SessionAuth stored on the request.
func (h *Handler) currentIdentity(c *gin.Context) (identity.Identity, error) {
	id, ok := identity.FromContext(c.Request.Context())
	if !ok || id.UserID == "" {
		return identity.Identity{}, pkgErrors.NewUnauthorizedHTTPError()
	}
	return id, nil
}
