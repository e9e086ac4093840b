package httpserver

import (
	"database/sql"
	"errors"
	"net/http"

	"lead-notification-srv/config"
	"lead-notification-srv/internal/notification"
	natsDelivery "lead-notification-srv/internal/notification/delivery/nats"
	redisDelivery "lead-notification-srv/internal/notification/delivery/redis"
	"lead-notification-srv/internal/websocket"
	"lead-notification-srv/pkg/discord"
	"lead-notification-srv/pkg/jwt"
	"lead-notification-srv/pkg/log"
	pkgRedis "lead-notification-srv/pkg/redis"

	"github.com/gin-gonic/gin"
	"github.com/nats-io/nats.go"
)

// HTTPServer owns the process: the gin engine, the gateway, the dispatcher
// and the event subscribers. New only wires and validates; Run starts things.
type HTTPServer struct {
	gin    *gin.Engine
	http   *http.Server
	l      log.Logger
	server config.HTTPServerConfig

	// Gateway and producer, built by mapHandlers
	wsUC       websocket.UseCase
	dispatcher notification.Dispatcher
	redisSub   redisDelivery.Subscriber
	natsSub    natsDelivery.Subscriber

	// Component configuration
	wsConfig    config.WebSocketConfig
	sessionCfg  config.SessionConfig
	subscriber  config.SubscriberConfig
	natsCfg     config.NATSConfig
	dispatchCfg config.DispatcherConfig

	// External services
	db         *sql.DB
	redis      pkgRedis.IRedis
	nats       *nats.Conn
	discord    discord.IDiscord
	jwtManager jwt.Manager
}

// Config is the constructor input for HTTPServer. Redis, NATS and Discord are optional.
type Config struct {
	Server     config.HTTPServerConfig
	WebSocket  config.WebSocketConfig
	Session    config.SessionConfig
	Subscriber config.SubscriberConfig
	NATS       config.NATSConfig
	Dispatcher config.DispatcherConfig

	DB         *sql.DB
	Redis      pkgRedis.IRedis
	NATSConn   *nats.Conn
	Discord    discord.IDiscord
	JWTManager jwt.Manager
}

// New creates a new HTTPServer. It does not start any goroutines.
func New(l log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	engine := gin.New()
	// only the exact upgrade path is served
	engine.RedirectTrailingSlash = false

	srv := &HTTPServer{
		gin:    engine,
		l:      l,
		server: cfg.Server,

		wsConfig:    cfg.WebSocket,
		sessionCfg:  cfg.Session,
		subscriber:  cfg.Subscriber,
		natsCfg:     cfg.NATS,
		dispatchCfg: cfg.Dispatcher,

		db:         cfg.DB,
		redis:      cfg.Redis,
		nats:       cfg.NATSConn,
		discord:    cfg.Discord,
		jwtManager: cfg.JWTManager,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	return srv, nil
}

// validate ensures all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.server.Port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("postgres connection is required")
	}
	if srv.jwtManager == nil {
		return errors.New("JWTManager is required")
	}
	if srv.sessionCfg.Store == config.SessionStoreRedis && srv.redis == nil {
		return errors.New("redis client is required for the redis session store")
	}
	if srv.subscriber.Enabled && srv.redis == nil {
		return errors.New("redis client is required for the redis subscriber")
	}
	return nil
}
