package http

import (
	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification"
)

type leadReq struct {
	ID           string `json:"id" binding:"required"`
	Name         string `json:"name"`
	CampaignID   string `json:"campaignId"`
	AssignedToID string `json:"assignedToId"`
}

func (r leadReq) toModel() model.Lead {
	return model.Lead{ID: r.ID, Name: r.Name, CampaignID: r.CampaignID, AssignedToID: r.AssignedToID}
}

type leadsCreatedReq struct {
	Leads      []leadReq `json:"leads" binding:"required,min=1,dive"`
	CampaignID string    `json:"campaignId"`
}

func (r leadsCreatedReq) toInput() notification.NewLeadInput {
	leads := make([]model.Lead, len(r.Leads))
	for i, l := range r.Leads {
		leads[i] = l.toModel()
	}
	return notification.LeadsCreatedEvent{Leads: leads, CampaignID: r.CampaignID}.ToInput()
}

type leadAssignedReq struct {
	Lead               leadReq `json:"lead" binding:"required"`
	AssigneeID         string  `json:"assigneeId" binding:"required"`
	PreviousAssigneeID string  `json:"previousAssigneeId"`
}

func (r leadAssignedReq) toInput() notification.AssignmentInput {
	return notification.LeadAssignedEvent{
		Lead:               r.Lead.toModel(),
		AssigneeID:         r.AssigneeID,
		PreviousAssigneeID: r.PreviousAssigneeID,
	}.ToInput()
}

type broadcastReq struct {
	Role    string  `json:"role" binding:"required"`
	Type    string  `json:"type" binding:"required"`
	Title   string  `json:"title" binding:"required"`
	Message string  `json:"message"`
	LeadID  *string `json:"leadId"`
}

func (r broadcastReq) toInput() notification.BroadcastInput {
	return notification.BroadcastInput{
		Role:    model.Role(r.Role),
		Type:    model.NotificationType(r.Type),
		Title:   r.Title,
		Message: r.Message,
		LeadID:  r.LeadID,
	}
}

type listReq struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

type acceptedResp struct {
	Accepted bool `json:"accepted"`
}

type countResp struct {
	Count int `json:"count"`
}

type successResp struct {
	Success bool  `json:"success"`
	Updated int64 `json:"updated"`
}

// notificationResp is the inbox view of a notification.
type notificationResp = model.Notification
