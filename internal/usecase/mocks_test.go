package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/network"
)

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockCacheRepository) GetRoute(ctx context.Context, queryKey string) ([]byte, error) {
	args := m.Called(ctx, queryKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetRoute(ctx context.Context, queryKey string, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, queryKey, data, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) GetStats(ctx context.Context) (*domain.NetworkStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.NetworkStats), args.Error(1)
}

func (m *MockCacheRepository) SetStats(ctx context.Context, stats *domain.NetworkStats, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

// testGraph: line 2 runs Nation -> Avron -> Alexandre Dumas, line 1 links Bastille and Nation
// in both directions.
func testGraph(t *testing.T) *network.Graph {
	t.Helper()
	g, err := network.Build(&domain.NetworkRecords{
		Stations: []domain.StationRecord{
			{Name: "Nation", Latitude: 48.848, Longitude: 2.396},
			{Name: "Avron", Latitude: 48.851, Longitude: 2.398},
			{Name: "Alexandre Dumas", Latitude: 48.856, Longitude: 2.394},
			{Name: "Bastille", Latitude: 48.853, Longitude: 2.369},
		},
		Segments: []domain.RailSegmentRecord{
			{StartName: "Nation", EndName: "Avron", LineID: "2 variant 1", Duration: 90, Distance: 0.6},
			{StartName: "Avron", EndName: "Alexandre Dumas", LineID: "2 variant 1", Duration: 65, Distance: 0.7},
			{StartName: "Bastille", EndName: "Nation", LineID: "1 variant 1", Duration: 300, Distance: 2.0},
			{StartName: "Nation", EndName: "Bastille", LineID: "1 variant 2", Duration: 300, Distance: 2.0},
		},
		Timetables: []domain.TimetableRow{
			{LineID: "2", TerminusName: "Nation", Departure: 19800, Variant: "1"},
			{LineID: "2", TerminusName: "Nation", Departure: 20700, Variant: "1"},
			{LineID: "1", TerminusName: "Bastille", Departure: 19800, Variant: "1"},
			{LineID: "1", TerminusName: "Nation", Departure: 20000, Variant: "2"},
		},
	}, zap.NewNop())
	require.NoError(t, err)
	return g
}
