package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain/repository"
	"github.com/transit-planner/internal/repository/postgres"
)

// NewNetworkRepositoryForTest creates a network source over the test database
func NewNetworkRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.NetworkSource {
	return postgres.NewNetworkRepository(postgres.NewDBForTest(db, logger), logger)
}
