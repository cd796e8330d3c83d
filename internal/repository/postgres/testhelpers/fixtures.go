package testhelpers

import (
	"context"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/repository/postgres"
)

// LoadRecords replaces the test database contents with records.
func LoadRecords(ctx context.Context, db *sqlx.DB, records *domain.NetworkRecords) error {
	return postgres.NewNetworkWriter(postgres.NewDBForTest(db, zap.NewNop()), nil).Replace(ctx, records)
}
