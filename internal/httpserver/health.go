package httpserver

import (
	"lead-notification-srv/pkg/errors"
	"lead-notification-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const serviceName = "lead-notification-srv"

// healthCheck reports dependency status and gateway counters.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "internal.httpserver.healthCheck: postgres: %v", err)
		response.HttpError(c, errors.NewServiceUnavailableHTTPError("Postgres connection failed"))
		return
	}
	redisStatus := "disabled"
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "internal.httpserver.healthCheck: redis: %v", err)
			response.HttpError(c, errors.NewServiceUnavailableHTTPError("Redis connection failed"))
			return
		}
		redisStatus = "connected"
	}

	body := gin.H{
		"status":   "healthy",
		"service":  serviceName,
		"postgres": "connected",
		"redis":    redisStatus,
	}
	if srv.wsUC != nil {
		if stats, err := srv.wsUC.GetStats(ctx); err == nil {
			body["active_connections"] = stats.ActiveConnections
			body["total_unique_users"] = stats.TotalUniqueUsers
		}
	}
	response.OK(c, body)
}

// readyCheck succeeds once postgres and, when configured, redis answer.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewServiceUnavailableHTTPError("Postgres connection not available"))
		return
	}
	if srv.redis != nil {
		if err := srv.redis.Ping(ctx); err != nil {
			response.HttpError(c, errors.NewServiceUnavailableHTTPError("Redis connection not available"))
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests.
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": serviceName,
	})
}
