package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/domain/repository"
	apperrors "github.com/transit-planner/internal/pkg/errors"
	"github.com/transit-planner/internal/pkg/validator"
)

type networkRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewNetworkRepository создает источник сети поверх PostgreSQL
func NewNetworkRepository(db *DB, logger *zap.Logger) repository.NetworkSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &networkRepository{
		db:     db,
		logger: logger,
	}
}

func (r *networkRepository) Name() string { return "postgres" }

// Load reads all three tables. Segments are ordered by id because the first segment of a line
// fixes its terminus.
func (r *networkRepository) Load(ctx context.Context) (*domain.NetworkRecords, error) {
	records := &domain.NetworkRecords{}

	if err := r.db.SelectContext(ctx, &records.Stations,
		`SELECT name, longitude, latitude FROM stations ORDER BY name`); err != nil {
		r.logger.Error("failed to load stations", zap.Error(err))
		return nil, fmt.Errorf("%w: load stations: %w", apperrors.ErrDatabaseError, err)
	}

	if err := r.db.SelectContext(ctx, &records.Segments,
		`SELECT start_name, end_name, line_id, duration, distance FROM rail_segments ORDER BY id`); err != nil {
		r.logger.Error("failed to load rail segments", zap.Error(err))
		return nil, fmt.Errorf("%w: load rail segments: %w", apperrors.ErrDatabaseError, err)
	}

	if err := r.db.SelectContext(ctx, &records.Timetables,
		`SELECT line_id, terminus_name, departure, variant FROM timetables ORDER BY line_id, variant, departure`); err != nil {
		r.logger.Error("failed to load timetables", zap.Error(err))
		return nil, fmt.Errorf("%w: load timetables: %w", apperrors.ErrDatabaseError, err)
	}

	for i := range records.Stations {
		if err := validator.Validate(records.Stations[i]); err != nil {
			return nil, fmt.Errorf("%w: station %q: %v", domain.ErrInvalidArgument, records.Stations[i].Name, err)
		}
	}
	for i := range records.Segments {
		if err := validator.Validate(records.Segments[i]); err != nil {
			return nil, fmt.Errorf("%w: rail segment %d: %v", domain.ErrInvalidArgument, i, err)
		}
	}
	for i := range records.Timetables {
		if err := validator.Validate(records.Timetables[i]); err != nil {
			return nil, fmt.Errorf("%w: timetable row %d: %v", domain.ErrInvalidArgument, i, err)
		}
	}

	r.logger.Info("Network loaded from database",
		zap.Int("stations", len(records.Stations)),
		zap.Int("segments", len(records.Segments)),
		zap.Int("departures", len(records.Timetables)),
	)
	return records, nil
}
