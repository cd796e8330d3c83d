// Command importer copies the network from the map and timetable files into PostgreSQL,
// replacing whatever the tables held before. Run it before starting the API with NETWORK_SOURCE=postgres.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/config"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/pkg/logger"
	"github.com/transit-planner/internal/repository/file"
	"github.com/transit-planner/internal/repository/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("Import failed", zap.Error(err))
		os.Exit(1)
	}
	log.Info("Import finished")
}

func run(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	records, err := file.NewSource(cfg.Network.MapFile, cfg.Network.TimetableFile, log).Load(ctx)
	if err != nil {
		return err
	}

	// refuse to store records the API could not build a network from
	if _, err := network.Build(records, zap.NewNop()); err != nil {
		return fmt.Errorf("records do not form a network: %w", err)
	}

	db, err := postgres.New(cfg, log)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		return err
	}
	return postgres.NewNetworkWriter(db, log).Replace(ctx, records)
}
