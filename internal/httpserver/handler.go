package httpserver

import (
	"lead-notification-srv/config"
	campaignPostgres "lead-notification-srv/internal/campaign/repository/postgre"
	"lead-notification-srv/internal/identity/session"
	"lead-notification-srv/internal/middleware"
	notificationHTTP "lead-notification-srv/internal/notification/delivery/http"
	natsDelivery "lead-notification-srv/internal/notification/delivery/nats"
	redisDelivery "lead-notification-srv/internal/notification/delivery/redis"
	"lead-notification-srv/internal/notification/dispatcher"
	notificationPostgres "lead-notification-srv/internal/notification/repository/postgre"
	notificationUC "lead-notification-srv/internal/notification/usecase"
	userPostgres "lead-notification-srv/internal/user/repository/postgre"
	wsHTTP "lead-notification-srv/internal/websocket/delivery/http"
	wsUC "lead-notification-srv/internal/websocket/usecase"
)

const (
	InternalApi = "/internal/api/v1"
	InboxApi    = "/api/notifications"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))
	srv.gin.Use(middleware.CORS(middleware.DefaultCORSConfig(srv.server.AllowedOrigins)))

	// Health check endpoints (no auth required)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/metrics", srv.metrics)

	// Repositories
	userRepo := userPostgres.New(srv.l, srv.db)
	campaignRepo := campaignPostgres.New(srv.l, srv.db)
	notificationRepo := notificationPostgres.New(srv.l, srv.db)

	// Identity
	var store session.Store
	if srv.sessionCfg.Store == config.SessionStoreRedis {
		store = session.NewRedisStore(srv.l, srv.redis, srv.sessionCfg.RedisPrefix)
	} else {
		store = session.NewPostgresStore(srv.l, srv.db, srv.sessionCfg.Table)
	}
	resolver := session.New(srv.l, store, userRepo, session.Config{
		CookieName: srv.sessionCfg.CookieName,
		Secret:     srv.sessionCfg.Secret,
	})
	mw := middleware.New(srv.l, srv.jwtManager, resolver)

	// Gateway
	srv.wsUC = wsUC.New(srv.l, resolver, wsUC.Config{
		PingInterval:   srv.wsConfig.PingInterval,
		WriteWait:      srv.wsConfig.WriteWait,
		MaxMessageSize: srv.wsConfig.MaxMessageSize,
		SendBufferSize: srv.wsConfig.SendBufferSize,
		MaxConnections: srv.wsConfig.MaxConnections,
	})
	wsHTTP.New(srv.l, srv.wsUC, wsHTTP.Config{
		ReadBufferSize:  srv.wsConfig.ReadBufferSize,
		WriteBufferSize: srv.wsConfig.WriteBufferSize,
		AllowedOrigins:  srv.wsConfig.AllowedOrigins,
	}).RegisterRoutes(srv.gin)

	// Producer
	uc := notificationUC.New(srv.l, notificationRepo, userRepo, campaignRepo, srv.wsUC)
	srv.dispatcher = dispatcher.New(srv.l, uc, srv.discord, dispatcher.Config{
		Workers:     srv.dispatchCfg.Workers,
		QueueSize:   srv.dispatchCfg.QueueSize,
		TaskTimeout: srv.dispatchCfg.TaskTimeout,
	})
	h := notificationHTTP.New(srv.l, uc, srv.dispatcher, srv.discord)
	h.RegisterInternalRoutes(srv.gin.Group(InternalApi), mw)
	h.RegisterInboxRoutes(srv.gin.Group(InboxApi), mw)

	// Event transports
	if srv.subscriber.Enabled {
		srv.redisSub = redisDelivery.New(srv.l, srv.redis, srv.dispatcher, redisDelivery.Config{
			LeadsCreatedChannel: srv.subscriber.LeadsCreatedChannel,
			LeadAssignedChannel: srv.subscriber.LeadAssignedChannel,
		})
	}
	if srv.nats != nil {
		srv.natsSub = natsDelivery.New(srv.l, srv.nats, srv.dispatcher, natsDelivery.Config{
			QueueGroup:          srv.natsCfg.QueueGroup,
			LeadsCreatedSubject: srv.natsCfg.LeadsCreatedSubject,
			LeadAssignedSubject: srv.natsCfg.LeadAssignedSubject,
		})
	}

	return nil
}
