package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	apperrors "github.com/transit-planner/internal/pkg/errors"
)

// NetworkWriter replaces the stored network with a new set of records.
type NetworkWriter struct {
	db     *DB
	logger *zap.Logger
}

func NewNetworkWriter(db *DB, logger *zap.Logger) *NetworkWriter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NetworkWriter{db: db, logger: logger}
}

// Replace truncates the three tables and inserts the records in a single transaction.
// Segments are inserted in slice order so their ids keep the ingestion order.
func (w *NetworkWriter) Replace(ctx context.Context, records *domain.NetworkRecords) error {
	tx, err := w.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin: %w", apperrors.ErrDatabaseError, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx,
		`TRUNCATE stations, rail_segments, timetables RESTART IDENTITY`); err != nil {
		return fmt.Errorf("%w: truncate: %w", apperrors.ErrDatabaseError, err)
	}

	for _, st := range records.Stations {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO stations (name, longitude, latitude) VALUES (:name, :longitude, :latitude)
			 ON CONFLICT (name) DO NOTHING`, st); err != nil {
			return fmt.Errorf("%w: insert station %s: %w", apperrors.ErrDatabaseError, st.Name, err)
		}
	}
	for _, seg := range records.Segments {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO rail_segments (start_name, end_name, line_id, duration, distance)
			 VALUES (:start_name, :end_name, :line_id, :duration, :distance)`, seg); err != nil {
			return fmt.Errorf("%w: insert rail segment %s -> %s: %w",
				apperrors.ErrDatabaseError, seg.StartName, seg.EndName, err)
		}
	}
	for _, row := range records.Timetables {
		if _, err := tx.NamedExecContext(ctx,
			`INSERT INTO timetables (line_id, terminus_name, departure, variant)
			 VALUES (:line_id, :terminus_name, :departure, :variant)`, row); err != nil {
			return fmt.Errorf("%w: insert timetable row %s: %w", apperrors.ErrDatabaseError, row.LineID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", apperrors.ErrDatabaseError, err)
	}

	w.logger.Info("Network stored",
		zap.Int("stations", len(records.Stations)),
		zap.Int("segments", len(records.Segments)),
		zap.Int("departures", len(records.Timetables)),
	)
	return nil
}
