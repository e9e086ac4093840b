package usecase

import (
	"context"
	"fmt"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/internal/notification/repository"
)

func (uc *implUseCase) NotifyNewLead(ctx context.Context, input notification.NewLeadInput) (notification.NotifyOutput, error) {
	if len(input.Leads) == 0 {
		return notification.NotifyOutput{}, nil
	}

	campaignID := input.CampaignID
	if campaignID == "" {
		campaignID = input.Leads[0].CampaignID
	}
	campaign := uc.campaignName(ctx, campaignID)

	opts := repository.CreateOptions{
		Type:   model.NotificationTypeNewLead,
		LeadID: leadIDPtr(input.Leads[0].ID),
	}
	if n := len(input.Leads); n == 1 {
		opts.Title = notification.TitleNewLead
		opts.Message = fmt.Sprintf(`New lead "%s" added to campaign "%s"`, input.Leads[0].Name, campaign)
	} else {
		opts.Title = fmt.Sprintf("%d New Leads Available", n)
		opts.Message = fmt.Sprintf(`%d new leads imported to campaign "%s"`, n, campaign)
	}

	recipients, err := uc.users.ListByRole(ctx, model.RoleSupportAssistant)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.NotifyNewLead.ListByRole: %v", err)
		return notification.NotifyOutput{}, err
	}

	var out notification.NotifyOutput
	for _, u := range recipients {
		opts.UserID = u.ID
		created, delivered := uc.persistAndPush(ctx, opts)
		if created {
			out.Created++
		}
		if delivered {
			out.Delivered++
		}
	}

	uc.l.Infof(ctx, "internal.notification.usecase.NotifyNewLead: leads=%d recipients=%d created=%d delivered=%d",
		len(input.Leads), len(recipients), out.Created, out.Delivered)
	return out, nil
}

func (uc *implUseCase) NotifyAssignment(ctx context.Context, input notification.AssignmentInput) (notification.NotifyOutput, error) {
	if input.AssigneeID == "" {
		return notification.NotifyOutput{}, notification.ErrAssigneeRequired
	}
	if input.Lead.ID == "" {
		return notification.NotifyOutput{}, notification.ErrLeadRequired
	}

	opts := repository.CreateOptions{
		UserID: input.AssigneeID,
		Type:   model.NotificationTypeLeadAssigned,
		Title:  notification.TitleLeadAssigned,
		Message: fmt.Sprintf(`Lead "%s" from campaign "%s" has been assigned to you`,
			input.Lead.Name, uc.campaignName(ctx, input.Lead.CampaignID)),
		LeadID: leadIDPtr(input.Lead.ID),
	}
	if input.WasReassignment {
		opts.Type = model.NotificationTypeLeadReassigned
		opts.Title = notification.TitleLeadReassigned
	}

	n, err := uc.repo.Create(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.NotifyAssignment.Create: %v", err)
		return notification.NotifyOutput{}, err
	}

	out := notification.NotifyOutput{Created: 1}
	if uc.notifier.SendToUser(ctx, n.UserID, n) {
		out.Delivered = 1
	}
	return out, nil
}

// persistAndPush stores one row and pushes it. A failed insert is logged so
// the remaining recipients still get theirs.
func (uc *implUseCase) persistAndPush(ctx context.Context, opts repository.CreateOptions) (created, delivered bool) {
	n, err := uc.repo.Create(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "internal.notification.usecase.persistAndPush: user=%s: %v", opts.UserID, err)
		return false, false
	}
	return true, uc.notifier.SendToUser(ctx, n.UserID, n)
}

func (uc *implUseCase) campaignName(ctx context.Context, id string) string {
	if id == "" {
		return notification.UnknownCampaign
	}
	c, err := uc.campaigns.Detail(ctx, id)
	if err != nil {
		uc.l.Warnf(ctx, "internal.notification.usecase.campaignName: campaign=%s: %v", id, err)
		return notification.UnknownCampaign
	}
	if c.Name == "" {
		return notification.UnknownCampaign
	}
	return c.Name
}

func leadIDPtr(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
