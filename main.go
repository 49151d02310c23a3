// main.go
package main

import (
	"context"
	"log"
	"os"
	"time"

	"teide-booking/cmd"
	"teide-booking/internal/data/catalog"
	"teide-booking/internal/data/repository"
	"teide-booking/internal/events"
	"teide-booking/internal/i18n"
	"teide-booking/internal/metrics"
	"teide-booking/internal/scheduler"
	"teide-booking/internal/wire"
	"teide-booking/pkg/database"
	"teide-booking/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	ctx := context.Background()

	// Connect to database
	db, err := database.InitDB(ctx, config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := database.Migrate(ctx, db); err != nil {
		logger.Fatal("Failed to migrate database", zap.Error(err))
	}

	logger.Info("Database connected successfully")

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := cmd.SeedAdmin(ctx, repos.AdminUser, config.Auth, logger); err != nil {
			logger.Fatal("Failed to seed admin", zap.Error(err))
		}
		return
	}

	if !config.Auth.HasEnvAdmin() {
		logger.Warn("Stateless admin fallback disabled: ADMIN_USERNAME, ADMIN_PASSWORD or SESSION_SECRET not set")
	}

	metrics.Register()

	translator, err := i18n.Bundled(config.App.DefaultLocale)
	if err != nil {
		logger.Fatal("Failed to load translations", zap.Error(err))
	}

	rdb := newRedis(ctx, config.Redis, logger)
	if rdb != nil {
		defer rdb.Close()
	}

	publisher := newPublisher(config.Broker, logger)
	defer publisher.Close()

	// Wire all dependencies
	app := wire.Wiring(wire.Dependencies{
		Repo:       repos,
		Catalog:    catalog.Default(),
		Publisher:  publisher,
		Translator: translator,
		DB:         db,
		Redis:      rdb,
	}, config, logger)

	sweeper, err := scheduler.NewSessionSweeper(config.Scheduler.SessionSweep, repos.Session, logger)
	if err != nil {
		logger.Fatal("Failed to schedule session sweep", zap.Error(err))
	}
	sweeper.Start()

	// Start server
	if err := cmd.APIServer(app.Router, config.App.Port, config.App.ShutdownTimeout, logger); err != nil {
		logger.Error("Server stopped with error", zap.Error(err))
	}

	stopCtx, cancel := context.WithTimeout(context.Background(), config.App.ShutdownTimeout)
	defer cancel()
	sweeper.Stop(stopCtx)

	logger.Info("Application stopped")
}

// newRedis returns nil when no address is configured. An unreachable server
// is only logged; the rate limiter lets traffic through until it recovers.
func newRedis(ctx context.Context, cfg utils.RedisConfig, logger *zap.Logger) *redis.Client {
	if cfg.Addr == "" {
		logger.Info("Redis not configured, rate limiting disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		logger.Warn("Redis unreachable at startup", zap.Error(err), zap.String("addr", cfg.Addr))
	}

	return rdb
}

func newPublisher(cfg utils.BrokerConfig, logger *zap.Logger) events.Publisher {
	if cfg.URL == "" {
		logger.Info("RABBITMQ_URL not set, booking events disabled")
		return events.NewNopPublisher()
	}

	publisher, err := events.NewRabbitPublisher(cfg.URL, cfg.Queue, logger)
	if err != nil {
		logger.Error("Failed to connect to RabbitMQ, booking events disabled", zap.Error(err))
		return events.NewNopPublisher()
	}
	return publisher
}
