package nats

import (
	"context"
	"sync"

	"lead-notification-srv/internal/notification"
	"lead-notification-srv/pkg/log"

	"github.com/nats-io/nats.go"
)

type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// Conn is the part of *nats.Conn the subscriber uses.
type Conn interface {
	QueueSubscribe(subject, queue string, cb nats.MsgHandler) (*nats.Subscription, error)
}

type Config struct {
	QueueGroup          string
	LeadsCreatedSubject string
	LeadAssignedSubject string
}

type subscriber struct {
	l          log.Logger
	conn       Conn
	dispatcher notification.Dispatcher
	cfg        Config

	mu   sync.Mutex
	subs []*nats.Subscription
}

func New(l log.Logger, conn Conn, dispatcher notification.Dispatcher, cfg Config) Subscriber {
	return &subscriber{
		l:          l,
		conn:       conn,
		dispatcher: dispatcher,
		cfg:        cfg,
	}
}
