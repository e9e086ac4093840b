package notification

import (
	"lead-notification-srv/internal/model"
)

const (
	UnknownCampaign = "Unknown"

	TitleNewLead        = "New Lead Available"
	TitleLeadAssigned   = "New Lead Assigned"
	TitleLeadReassigned = "Lead Reassigned to You"
)

// NewLeadInput covers a single created lead or a bulk import.
type NewLeadInput struct {
	Leads []model.Lead
	// CampaignID falls back to the first lead's campaign when empty.
	CampaignID string
}

type AssignmentInput struct {
	Lead            model.Lead
	AssigneeID      string
	WasReassignment bool
}

type NotifyOutput struct {
	Created   int
	Delivered int
}

type ListInput struct {
	UserID string
	Limit  int
}

type MarkReadInput struct {
	ID     string
	UserID string
}

type BroadcastInput struct {
	Role    model.Role
	Type    model.NotificationType
	Title   string
	Message string
	LeadID  *string
}

type DispatcherStats struct {
	QueueDepth int
	Enqueued   int64
	Dropped    int64
	Completed  int64
	Failed     int64
	Panicked   int64
}
