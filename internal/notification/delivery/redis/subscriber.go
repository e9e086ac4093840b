package redis

import (
	"context"
	"fmt"
)

func (s *subscriber) Start() error {
	ctx := context.Background()

	channels := []string{s.cfg.LeadsCreatedChannel, s.cfg.LeadAssignedChannel}
	s.pubsub = s.redis.Subscribe(ctx, channels...)

	// wait for the subscription to be confirmed
	if _, err := s.pubsub.Receive(ctx); err != nil {
		_ = s.pubsub.Close()
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(ctx)

	s.l.Infof(ctx, "Redis subscriber started on channels: %v", channels)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()
	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.l.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Channel, []byte(msg.Payload))
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	s.once.Do(func() { close(s.quit) })
	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.l.Errorf(ctx, "failed to close pubsub: %v", err)
		}
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		s.l.Infof(ctx, "Redis subscriber stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
