package postgres

import (
	"time"

	"lead-notification-srv/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	defaultListLimit = 50

	returningColumns = `id, user_id, type, title, message, lead_id, read, created_at`

	createQuery = `INSERT INTO notifications (user_id, type, title, message, lead_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + returningColumns

	listQuery = `SELECT ` + returningColumns + `
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2`

	countUnreadQuery = `SELECT count(*)::int AS count FROM notifications WHERE user_id = $1 AND read = false`

	markReadQuery = `UPDATE notifications SET read = true
WHERE id = $1 AND user_id = $2
RETURNING ` + returningColumns

	markAllReadQuery = `UPDATE notifications SET read = true WHERE user_id = $1 AND read = false`
)

type notificationRow struct {
	ID        string      `boil:"id"`
	UserID    string      `boil:"user_id"`
	Type      string      `boil:"type"`
	Title     string      `boil:"title"`
	Message   string      `boil:"message"`
	LeadID    null.String `boil:"lead_id"`
	Read      bool        `boil:"read"`
	CreatedAt time.Time   `boil:"created_at"`
}

type countRow struct {
	Count int `boil:"count"`
}

func (r notificationRow) toModel() model.Notification {
	n := model.Notification{
		ID:        r.ID,
		UserID:    r.UserID,
		Type:      model.NotificationType(r.Type),
		Title:     r.Title,
		Message:   r.Message,
		Read:      r.Read,
		CreatedAt: r.CreatedAt,
	}
	if r.LeadID.Valid {
		leadID := r.LeadID.String
		n.LeadID = &leadID
	}
	return n
}

func listLimit(limit int) int {
	if limit <= 0 || limit > defaultListLimit {
		return defaultListLimit
	}
	return limit
}
