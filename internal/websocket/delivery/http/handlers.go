package http

import (
	"errors"
	"net/http"

	"lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const rawUnauthorized = "HTTP/1.1 401 Unauthorized\r\nConnection: close\r\nContent-Length: 0\r\n\r\n"

// HandleWebSocket authenticates the session cookie and upgrades the connection.
// Unauthenticated attempts get a bare 401 on the raw socket and no upgrade.
func (h *Handler) HandleWebSocket(c *gin.Context) {
	ctx := c.Request.Context()

	info, err := h.uc.Accept(ctx, websocket.AcceptInput{
		Cookie: c.GetHeader("Cookie"),
		Upgrade: func() (websocket.Transport, error) {
			return h.upgrader.Upgrade(c.Writer, c.Request, nil)
		},
	})
	if err != nil {
		switch {
		case errors.Is(err, websocket.ErrUnauthorized):
			h.rejectUnauthorized(c)
		case errors.Is(err, websocket.ErrUpgradeFailed):
			// the upgrader has already answered
			h.l.Warnf(ctx, "internal.websocket.delivery.http.HandleWebSocket: %v", err)
		default:
			response.Error(c, h.mapError(err), nil)
		}
		return
	}

	h.l.Debugf(ctx, "internal.websocket.delivery.http.HandleWebSocket: upgraded conn=%s user=%s", info.ID, info.UserID)
}

// rejectUnauthorized writes a minimal 401 on the hijacked connection and closes it.
func (h *Handler) rejectUnauthorized(c *gin.Context) {
	conn, buf, err := c.Writer.Hijack()
	if err != nil {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	defer conn.Close()
	c.Abort()

	if _, err := buf.WriteString(rawUnauthorized); err == nil {
		_ = buf.Flush()
	}
}
