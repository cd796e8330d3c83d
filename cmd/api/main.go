package main

// @title Transit Planner API
// @version 1.0.0
// @description Поиск маршрутов по сети метро с учетом расписаний и пеших переходов.
// @description
// @description Основные возможности:
// @description - Лучший маршрут по времени или расстоянию между станциями и произвольными точками
// @description - Линии, станции, пересадочные узлы
// @description - Расписание линии на станции

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/transit-planner/docs/swagger"
	"github.com/transit-planner/internal/config"
	httpDelivery "github.com/transit-planner/internal/delivery/http"
	"github.com/transit-planner/internal/delivery/http/handler"
	"github.com/transit-planner/internal/domain/repository"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/pkg/logger"
	"github.com/transit-planner/internal/repository/cache"
	"github.com/transit-planner/internal/repository/file"
	"github.com/transit-planner/internal/repository/postgres"
	"github.com/transit-planner/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Transit Planner")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("network_source", cfg.Network.Source),
	)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	// 3. Pick the network source
	var (
		source repository.NetworkSource
		db     *postgres.DB
	)
	switch cfg.Network.Source {
	case config.SourcePostgres:
		db, err = postgres.New(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
		}
		defer func() {
			if err := db.Close(); err != nil {
				log.Error("Failed to close PostgreSQL connection", zap.Error(err))
			}
		}()
		if err := db.Migrate(ctx); err != nil {
			log.Fatal("Failed to migrate PostgreSQL", zap.Error(err))
		}
		source = postgres.NewNetworkRepository(db, log)
	default:
		source = file.NewSource(cfg.Network.MapFile, cfg.Network.TimetableFile, log)
	}

	// 4. Build the network once; it is read-only from here on
	records, err := source.Load(ctx)
	if err != nil {
		log.Fatal("Failed to load network", zap.String("source", source.Name()), zap.Error(err))
	}
	graph, err := network.Build(records, log)
	if err != nil {
		log.Fatal("Failed to build network", zap.Error(err))
	}

	// 5. Connect to Redis, optional
	var cacheRepo repository.CacheRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		if err := redisClient.Health(ctx); err != nil {
			log.Fatal("Redis health check failed", zap.Error(err))
		}
		cacheRepo = cache.NewCacheRepository(redisClient)
		log.Info("Redis connected")
	} else {
		log.Info("Route cache disabled")
	}

	// 6. Initialize Use Cases
	pathUC := usecase.NewPathUseCase(graph, cacheRepo, log, cfg.Cache.RouteCacheTTL)
	metroUC := usecase.NewMetroUseCase(graph, log)
	statsUC := usecase.NewStatsUseCase(graph, cacheRepo, log, cfg.Cache.StatsCacheTTL)

	// 7. Initialize HTTP Handlers and Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		handler.NewPathHandler(pathUC, log),
		handler.NewMetroHandler(metroUC, log),
		handler.NewStatsHandler(statsUC, log),
	)

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 8. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
