package dispatcher

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"lead-notification-srv/internal/notification"
	"lead-notification-srv/pkg/discord"
	"lead-notification-srv/pkg/log"
)

const (
	DefaultWorkers     = 4
	DefaultQueueSize   = 1024
	DefaultTaskTimeout = 10 * time.Second
)

type Config struct {
	Workers     int
	QueueSize   int
	TaskTimeout time.Duration
}

type task struct {
	name string
	run  func(ctx context.Context) error
}

type implDispatcher struct {
	l       log.Logger
	uc      notification.UseCase
	discord discord.IDiscord
	cfg     Config

	queue   chan task
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	started atomic.Bool

	enqueued  atomic.Int64
	dropped   atomic.Int64
	completed atomic.Int64
	failed    atomic.Int64
	panicked  atomic.Int64
}

// New builds a Dispatcher over uc. d may be nil.
func New(l log.Logger, uc notification.UseCase, d discord.IDiscord, cfg Config) notification.Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.TaskTimeout <= 0 {
		cfg.TaskTimeout = DefaultTaskTimeout
	}
	return &implDispatcher{
		l:       l,
		uc:      uc,
		discord: d,
		cfg:     cfg,
		queue:   make(chan task, cfg.QueueSize),
	}
}
