package postgres

import (
	"context"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/config"
)

// Schema creates the three tables the network is read from.
const Schema = `
CREATE TABLE IF NOT EXISTS stations (
	name      TEXT PRIMARY KEY,
	longitude DOUBLE PRECISION NOT NULL CHECK (longitude BETWEEN -180 AND 180),
	latitude  DOUBLE PRECISION NOT NULL CHECK (latitude BETWEEN -90 AND 90)
);

CREATE TABLE IF NOT EXISTS rail_segments (
	id         BIGSERIAL PRIMARY KEY,
	start_name TEXT NOT NULL REFERENCES stations(name),
	end_name   TEXT NOT NULL REFERENCES stations(name),
	line_id    TEXT NOT NULL,
	duration   INTEGER NOT NULL CHECK (duration >= 0),
	distance   DOUBLE PRECISION NOT NULL CHECK (distance >= 0)
);

CREATE TABLE IF NOT EXISTS timetables (
	id            BIGSERIAL PRIMARY KEY,
	line_id       TEXT NOT NULL,
	terminus_name TEXT NOT NULL,
	departure     INTEGER NOT NULL CHECK (departure >= 0),
	variant       TEXT NOT NULL DEFAULT ''
);
`

type DB struct {
	*sqlx.DB
	logger *zap.Logger
}

func New(cfg *config.Config, logger *zap.Logger) (*DB, error) {
	db, err := sqlx.Connect("pgx", cfg.GetDatabaseDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.Database.ConnMaxIdleTime)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("PostgreSQL connected",
		zap.String("host", cfg.Database.Host),
		zap.Int("port", cfg.Database.Port),
		zap.String("database", cfg.Database.DBName),
	)

	return &DB{DB: db, logger: logger}, nil
}

// Migrate applies Schema. Safe to run on every start.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	db.logger.Info("Closing PostgreSQL connection")
	return db.DB.Close()
}

func (db *DB) Health(ctx context.Context) error {
	return db.PingContext(ctx)
}

// NewDBForTest wraps an existing connection
func NewDBForTest(sqlxDB *sqlx.DB, logger *zap.Logger) *DB {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DB{
		DB:     sqlxDB,
		logger: logger,
	}
}
