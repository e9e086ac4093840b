package http

import "github.com/gin-gonic/gin"

// Path is the only route the gateway answers.
const Path = "/ws/notifications"

// RegisterRoutes mounts the upgrade endpoint. No auth middleware runs here;
// the handler authenticates from the Cookie header before upgrading.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET(Path, h.HandleWebSocket)
}
