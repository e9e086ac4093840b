package repository

import "lead-notification-srv/internal/model"

// CreateOptions contains the columns of a new notification row.
// id, read and created_at take their database defaults.
type CreateOptions struct {
	UserID  string
	Type    model.NotificationType
	Title   string
	Message string
	LeadID  *string
}

// ListOptions contains options for listing a user's notifications.
type ListOptions struct {
	UserID string
	Limit  int
}

// MarkReadOptions identifies one notification owned by UserID.
type MarkReadOptions struct {
	ID     string
	UserID string
}
