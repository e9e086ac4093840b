package redis

import (
	"context"

	"lead-notification-srv/internal/notification"
)

// handleMessage decodes one event and hands it to the dispatcher. Bad
// payloads are logged and skipped.
func (s *subscriber) handleMessage(ctx context.Context, channel string, payload []byte) {
	var err error
	switch channel {
	case s.cfg.LeadsCreatedChannel:
		var input notification.NewLeadInput
		if input, err = notification.DecodeLeadsCreated(payload); err == nil {
			err = s.dispatcher.LeadsCreated(ctx, input)
		}
	case s.cfg.LeadAssignedChannel:
		var input notification.AssignmentInput
		if input, err = notification.DecodeLeadAssigned(payload); err == nil {
			err = s.dispatcher.LeadAssigned(ctx, input)
		}
	default:
		s.l.Debugf(ctx, "internal.notification.delivery.redis.handleMessage: unexpected channel %s", channel)
		return
	}

	if err != nil {
		s.l.Warnf(ctx, "internal.notification.delivery.redis.handleMessage: channel=%s: %v", channel, err)
	}
}
