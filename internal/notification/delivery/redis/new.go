package redis

import (
	"context"
	"sync"

	"lead-notification-srv/internal/notification"
	"lead-notification-srv/pkg/log"
	pkgRedis "lead-notification-srv/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type Subscriber interface {
	Start() error
	Shutdown(ctx context.Context) error
}

// Config names the channels carrying lead events.
type Config struct {
	LeadsCreatedChannel string
	LeadAssignedChannel string
}

type subscriber struct {
	redis      pkgRedis.IRedis
	dispatcher notification.Dispatcher
	l          log.Logger
	cfg        Config

	pubsub *goredis.PubSub
	wg     sync.WaitGroup
	quit   chan struct{}
	once   sync.Once
}

func New(l log.Logger, redis pkgRedis.IRedis, dispatcher notification.Dispatcher, cfg Config) Subscriber {
	return &subscriber{
		redis:      redis,
		dispatcher: dispatcher,
		l:          l,
		cfg:        cfg,
		quit:       make(chan struct{}),
	}
}
