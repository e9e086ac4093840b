package dispatcher

import (
	"context"
	"fmt"

	"lead-notification-srv/internal/notification"
)

func (d *implDispatcher) Start() {
	if !d.started.CompareAndSwap(false, true) {
		return
	}
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker()
	}
	d.l.Infof(context.Background(), "internal.notification.dispatcher: started %d workers, queue size %d", d.cfg.Workers, d.cfg.QueueSize)
}

func (d *implDispatcher) LeadsCreated(ctx context.Context, input notification.NewLeadInput) error {
	return d.enqueue(ctx, task{
		name: "leads_created",
		run: func(ctx context.Context) error {
			_, err := d.uc.NotifyNewLead(ctx, input)
			return err
		},
	})
}

func (d *implDispatcher) LeadAssigned(ctx context.Context, input notification.AssignmentInput) error {
	return d.enqueue(ctx, task{
		name: "lead_assigned",
		run: func(ctx context.Context) error {
			_, err := d.uc.NotifyAssignment(ctx, input)
			return err
		},
	})
}

func (d *implDispatcher) enqueue(ctx context.Context, t task) error {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return notification.ErrDispatcherClosed
	}

	select {
	case d.queue <- t:
		d.enqueued.Add(1)
		return nil
	default:
		d.dropped.Add(1)
		d.l.Warnf(ctx, "internal.notification.dispatcher.enqueue: queue full, dropping %s", t.name)
		return notification.ErrQueueFull
	}
}

func (d *implDispatcher) worker() {
	defer d.wg.Done()
	for t := range d.queue {
		d.execute(t)
	}
}

// execute runs t under a timeout. Errors and panics stop here.
func (d *implDispatcher) execute(t task) {
	ctx, cancel := context.WithTimeout(context.Background(), d.cfg.TaskTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.panicked.Add(1)
			err := fmt.Errorf("panic: %v", r)
			d.l.Errorf(ctx, "internal.notification.dispatcher.execute: %s: %v", t.name, err)
			d.report(ctx, t.name, err)
		}
	}()

	if err := t.run(ctx); err != nil {
		d.failed.Add(1)
		d.l.Errorf(ctx, "internal.notification.dispatcher.execute: %s: %v", t.name, err)
		d.report(ctx, t.name, err)
		return
	}
	d.completed.Add(1)
}

func (d *implDispatcher) report(ctx context.Context, name string, err error) {
	if d.discord == nil {
		return
	}
	if sendErr := d.discord.SendError(ctx, "Notification dispatch failed", name, err); sendErr != nil {
		d.l.Warnf(ctx, "internal.notification.dispatcher.report: %v", sendErr)
	}
}

// Shutdown stops intake, then waits for queued tasks to drain, bounded by ctx.
func (d *implDispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	if !d.started.Load() {
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.l.Info(ctx, "internal.notification.dispatcher: drained")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *implDispatcher) Stats() notification.DispatcherStats {
	return notification.DispatcherStats{
		QueueDepth: len(d.queue),
		Enqueued:   d.enqueued.Load(),
		Dropped:    d.dropped.Load(),
		Completed:  d.completed.Load(),
		Failed:     d.failed.Load(),
		Panicked:   d.panicked.Load(),
	}
}
