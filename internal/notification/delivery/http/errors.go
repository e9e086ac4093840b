package http

import (
	"errors"
	"net/http"

	"lead-notification-srv/internal/notification"
	pkgErrors "lead-notification-srv/pkg/errors"
)

var (
	errNotificationNotFound = pkgErrors.NewHTTPError(140001, "Notification not found", http.StatusNotFound)
	errInvalidEvent         = pkgErrors.NewHTTPError(140002, "Invalid event", http.StatusBadRequest)
	errInvalidBroadcast     = pkgErrors.NewHTTPError(140003, "Invalid broadcast", http.StatusBadRequest)
	errBusy                 = pkgErrors.NewServiceUnavailableHTTPError("Notification queue is full")
	errClosed               = pkgErrors.NewServiceUnavailableHTTPError("Service is shutting down")
)

func (h *Handler) mapError(err error) error {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, notification.ErrNotificationNotFound):
		return errNotificationNotFound
	case errors.Is(err, notification.ErrAssigneeRequired),
		errors.Is(err, notification.ErrLeadRequired),
		errors.Is(err, notification.ErrInvalidPayload):
		return errInvalidEvent
	case errors.Is(err, notification.ErrInvalidRole),
		errors.Is(err, notification.ErrInvalidType),
		errors.Is(err, notification.ErrTitleRequired):
		return errInvalidBroadcast
	case errors.Is(err, notification.ErrQueueFull):
		return errBusy
	case errors.Is(err, notification.ErrDispatcherClosed):
		return errClosed
	}
	return err
}
