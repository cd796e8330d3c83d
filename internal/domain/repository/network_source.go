package repository

import (
	"context"

	"github.com/transit-planner/internal/domain"
)

// NetworkSource produces the flat records the network is built from.
// Implementations must return fully read records; the graph never calls back into a source.
type NetworkSource interface {
	// Load reads stations, rail segments and timetable rows
	Load(ctx context.Context) (*domain.NetworkRecords, error)

	// Name identifies the source in logs
	Name() string
}
