package main

import (
	"context"
	"fmt"

	"lead-notification-srv/config"
	configNATS "lead-notification-srv/config/nats"
	"lead-notification-srv/config/postgre"
	configRedis "lead-notification-srv/config/redis"
	"lead-notification-srv/internal/httpserver"
	"lead-notification-srv/pkg/discord"
	"lead-notification-srv/pkg/jwt"
	"lead-notification-srv/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		Service:      "lead-notification-srv",
	})
	defer logger.Sync()

	ctx := context.Background()

	// Initialize PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
		return
	}
	defer postgre.Disconnect(ctx)
	logger.Infof(ctx, "PostgreSQL connected successfully to %s:%d/%s", cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DBName)

	// Initialize Redis (optional)
	redisClient, err := configRedis.Connect(cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	if redisClient != nil {
		defer redisClient.Close()
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)
	}

	// Initialize NATS (optional)
	natsConn, err := configNATS.Connect(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	if natsConn != nil {
		defer natsConn.Close()
		logger.Infof(ctx, "NATS connected successfully to %s", natsConn.ConnectedUrl())
	}

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken, discord.Config{
			RetryCount: discord.DefaultRetryCount,
		})
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	}

	// Initialize JWT manager for internal callers
	jwtManager, err := jwt.New(jwt.Config{
		SecretKey: cfg.InternalJWT.SecretKey,
		Issuer:    cfg.InternalJWT.Issuer,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Server:     cfg.HTTPServer,
		WebSocket:  cfg.WebSocket,
		Session:    cfg.Session,
		Subscriber: cfg.Subscriber,
		NATS:       cfg.NATS,
		Dispatcher: cfg.Dispatcher,

		// Storage & Transport Configuration
		DB:       postgresDB,
		Redis:    redisClient,
		NATSConn: natsConn,

		// Authentication & Monitoring Configuration
		Discord:    discordClient,
		JWTManager: jwtManager,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}
