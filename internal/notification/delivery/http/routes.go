package http

import (
	"lead-notification-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterInternalRoutes mounts the service-to-service event API.
func (h *Handler) RegisterInternalRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.Use(mw.InternalAuth())

	events := r.Group("/events")
	{
		events.POST("/leads-created", h.LeadsCreated)
		events.POST("/lead-assigned", h.LeadAssigned)
	}
	r.POST("/notifications/broadcast", h.Broadcast)
}

// RegisterInboxRoutes mounts the per-user inbox behind session auth.
func (h *Handler) RegisterInboxRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	r.Use(mw.SessionAuth())

	r.GET("", h.List)
	r.GET("/unread-count", h.UnreadCount)
	r.POST("/mark-all-read", h.MarkAllRead)
	r.POST("/:id/read", h.MarkRead)
}
