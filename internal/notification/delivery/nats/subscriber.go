package nats

import (
	"context"
	"fmt"

	"lead-notification-srv/internal/notification"

	"github.com/nats-io/nats.go"
)

// Start joins the queue group on both lead subjects, so each event is handled
// by one replica.
func (s *subscriber) Start() error {
	routes := map[string]nats.MsgHandler{
		s.cfg.LeadsCreatedSubject: s.handleLeadsCreated,
		s.cfg.LeadAssignedSubject: s.handleLeadAssigned,
	}

	for subject, cb := range routes {
		sub, err := s.conn.QueueSubscribe(subject, s.cfg.QueueGroup, cb)
		if err != nil {
			return fmt.Errorf("nats subscribe %s: %w", subject, err)
		}
		s.mu.Lock()
		s.subs = append(s.subs, sub)
		s.mu.Unlock()
	}

	s.l.Infof(context.Background(), "NATS subscriber started on subjects: %s, %s (queue %s)",
		s.cfg.LeadsCreatedSubject, s.cfg.LeadAssignedSubject, s.cfg.QueueGroup)
	return nil
}

func (s *subscriber) handleLeadsCreated(m *nats.Msg) {
	ctx := context.Background()
	input, err := notification.DecodeLeadsCreated(m.Data)
	if err == nil {
		err = s.dispatcher.LeadsCreated(ctx, input)
	}
	if err != nil {
		s.l.Warnf(ctx, "internal.notification.delivery.nats.handleLeadsCreated: subject=%s: %v", m.Subject, err)
	}
}

func (s *subscriber) handleLeadAssigned(m *nats.Msg) {
	ctx := context.Background()
	input, err := notification.DecodeLeadAssigned(m.Data)
	if err == nil {
		err = s.dispatcher.LeadAssigned(ctx, input)
	}
	if err != nil {
		s.l.Warnf(ctx, "internal.notification.delivery.nats.handleLeadAssigned: subject=%s: %v", m.Subject, err)
	}
}

// Shutdown drains every subscription so in-flight callbacks finish.
func (s *subscriber) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.mu.Unlock()

	for _, sub := range subs {
		if sub == nil {
			continue
		}
		if err := sub.Drain(); err != nil {
			s.l.Warnf(ctx, "internal.notification.delivery.nats.Shutdown: drain %s: %v", sub.Subject, err)
		}
	}
	s.l.Infof(ctx, "NATS subscriber stopped")
	return nil
}
