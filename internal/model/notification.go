package model

import "time"

// NotificationType tags what happened to a lead.
type NotificationType string

const (
	NotificationTypeNewLead        NotificationType = "new_lead"
	NotificationTypeLeadAssigned   NotificationType = "lead_assigned"
	NotificationTypeLeadReassigned NotificationType = "lead_reassigned"
)

func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationTypeNewLead, NotificationTypeLeadAssigned, NotificationTypeLeadReassigned:
		return true
	}
	return false
}

// Notification is an addressed, durable event record. Its JSON form is the
// `data` object of a notification frame.
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"userId"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	LeadID    *string          `json:"leadId"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}
