package notification

import (
	"encoding/json"

	"lead-notification-srv/internal/model"
)

// LeadsCreatedEvent is published after leads are inserted.
type LeadsCreatedEvent struct {
	Leads      []model.Lead `json:"leads"`
	CampaignID string       `json:"campaignId"`
}

func (e LeadsCreatedEvent) ToInput() NewLeadInput {
	return NewLeadInput{Leads: e.Leads, CampaignID: e.CampaignID}
}

// LeadAssignedEvent is published after a lead's assignee changes.
type LeadAssignedEvent struct {
	Lead               model.Lead `json:"lead"`
	AssigneeID         string     `json:"assigneeId"`
	PreviousAssigneeID string     `json:"previousAssigneeId,omitempty"`
}

func (e LeadAssignedEvent) ToInput() AssignmentInput {
	return AssignmentInput{
		Lead:            e.Lead,
		AssigneeID:      e.AssigneeID,
		WasReassignment: e.PreviousAssigneeID != "",
	}
}

// DecodeLeadsCreated parses a LeadsCreatedEvent payload.
func DecodeLeadsCreated(payload []byte) (NewLeadInput, error) {
	var e LeadsCreatedEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return NewLeadInput{}, ErrInvalidPayload
	}
	return e.ToInput(), nil
}

// DecodeLeadAssigned parses a LeadAssignedEvent payload.
func DecodeLeadAssigned(payload []byte) (AssignmentInput, error) {
	var e LeadAssignedEvent
	if err := json.Unmarshal(payload, &e); err != nil {
		return AssignmentInput{}, ErrInvalidPayload
	}
	if e.AssigneeID == "" {
		return AssignmentInput{}, ErrAssigneeRequired
	}
	return e.ToInput(), nil
}
