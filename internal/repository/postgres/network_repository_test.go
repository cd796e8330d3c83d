package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/domain/repository"
	"github.com/transit-planner/internal/network"
	apperrors "github.com/transit-planner/internal/pkg/errors"
	"github.com/transit-planner/internal/repository/postgres"
	"github.com/transit-planner/internal/repository/postgres/testhelpers"
)

// NetworkRepositoryTestSuite тестирует загрузку сети из PostgreSQL
type NetworkRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.NetworkSource
	ctx    context.Context
}

func (s *NetworkRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.ctx = context.Background()

	s.Require().NoError(s.testDB.Cleanup(s.ctx))
	s.Require().NoError(testhelpers.LoadRecords(s.ctx, s.testDB.DB, fixtureRecords()))

	s.repo = testhelpers.NewNetworkRepositoryForTest(s.testDB.DB, s.testDB.Logger)
}

func (s *NetworkRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.Cleanup(context.Background())
		s.testDB.Close()
	}
}

func (s *NetworkRepositoryTestSuite) TestLoad() {
	records, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)

	s.Len(records.Stations, 3)
	s.Equal("Alexandre Dumas", records.Stations[0].Name)
	s.Require().Len(records.Segments, 2)
	s.Equal("Nation", records.Segments[0].StartName)
	s.Equal(90, records.Segments[0].Duration)
	s.Require().Len(records.Timetables, 2)
	s.Equal(19800, records.Timetables[0].Departure)
	s.Equal("postgres", s.repo.Name())
}

func (s *NetworkRepositoryTestSuite) TestLoad_BuildsNetwork() {
	records, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)

	g, err := network.Build(records, zap.NewNop())
	s.Require().NoError(err)

	line := g.Line("2 variant 1")
	s.Require().NotNil(line)
	s.Equal("Nation", line.Terminus().Name())

	offset, ok := g.StationByName("Alexandre Dumas").ScheduleFor(line.ScheduleKey())
	s.True(ok)
	s.Equal(155, offset)
}

func (s *NetworkRepositoryTestSuite) TestReplace() {
	defer func() {
		s.Require().NoError(testhelpers.LoadRecords(s.ctx, s.testDB.DB, fixtureRecords()))
	}()

	writer := postgres.NewNetworkWriter(postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger), s.testDB.Logger)
	s.Require().NoError(writer.Replace(s.ctx, &domain.NetworkRecords{
		Stations: []domain.StationRecord{
			{Name: "Bastille", Longitude: 2.369, Latitude: 48.853},
			{Name: "Nation", Longitude: 2.396, Latitude: 48.848},
		},
		Segments: []domain.RailSegmentRecord{
			{StartName: "Bastille", EndName: "Nation", LineID: "1 variant 1", Duration: 300, Distance: 2.1},
		},
		Timetables: []domain.TimetableRow{
			{LineID: "1", TerminusName: "Bastille", Departure: 19800, Variant: "1"},
		},
	}))

	records, err := s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(records.Stations, 2)
	s.Require().Len(records.Segments, 1)
	s.Equal("1 variant 1", records.Segments[0].LineID)

	// unknown station violates the foreign key and leaves the previous contents in place
	err = writer.Replace(s.ctx, &domain.NetworkRecords{
		Segments: []domain.RailSegmentRecord{
			{StartName: "Nowhere", EndName: "Nation", LineID: "1 variant 1", Duration: 1, Distance: 1},
		},
	})
	s.ErrorIs(err, apperrors.ErrDatabaseError)

	records, err = s.repo.Load(s.ctx)
	s.Require().NoError(err)
	s.Len(records.Stations, 2)
}

func TestNetworkRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NetworkRepositoryTestSuite))
}

func fixtureRecords() *domain.NetworkRecords {
	return &domain.NetworkRecords{
		Stations: []domain.StationRecord{
			{Name: "Nation", Longitude: 2.396, Latitude: 48.848},
			{Name: "Avron", Longitude: 2.398, Latitude: 48.851},
			{Name: "Alexandre Dumas", Longitude: 2.394, Latitude: 48.856},
		},
		Segments: []domain.RailSegmentRecord{
			{StartName: "Nation", EndName: "Avron", LineID: "2 variant 1", Duration: 90, Distance: 0.6},
			{StartName: "Avron", EndName: "Alexandre Dumas", LineID: "2 variant 1", Duration: 65, Distance: 0.7},
		},
		Timetables: []domain.TimetableRow{
			{LineID: "2", TerminusName: "Nation", Departure: 20700, Variant: "1"},
			{LineID: "2", TerminusName: "Nation", Departure: 19800, Variant: "1"},
		},
	}
}
