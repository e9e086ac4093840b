package http

import (
	"lead-notification-srv/internal/websocket"
	pkgErrors "lead-notification-srv/pkg/errors"
)

func (h *Handler) mapError(err error) error {
	switch err {
	case websocket.ErrMaxConnectionsReached:
		return pkgErrors.NewServiceUnavailableHTTPError("Maximum connections reached")
	case websocket.ErrGatewayClosed:
		return pkgErrors.NewServiceUnavailableHTTPError("Gateway is shutting down")
	}
	return err
}
