package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transit-planner/internal/domain"
)

func TestNewCoordinate(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		for _, c := range [][2]float64{{0, 0}, {-90, -180}, {90, 180}, {48.8566, 2.3522}} {
			coord, err := domain.NewCoordinate(c[0], c[1])
			require.NoError(t, err)
			assert.Equal(t, 0.0, coord.DistanceTo(coord))
		}
	})

	t.Run("out of range", func(t *testing.T) {
		for _, c := range [][2]float64{{-90.1, 0}, {90.1, 0}, {0, -180.1}, {0, 180.1}} {
			_, err := domain.NewCoordinate(c[0], c[1])
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		}
	})
}

func TestCoordinate_DistanceTo(t *testing.T) {
	a, _ := domain.NewCoordinate(48.8566, 2.3522)
	b, _ := domain.NewCoordinate(48.8738, 2.2950)

	assert.InDelta(t, a.DistanceTo(b), b.DistanceTo(a), 1e-12)
	assert.Greater(t, a.DistanceTo(b), 4.0)

	// one degree of latitude on the configured radius
	origin, _ := domain.NewCoordinate(0, 0)
	north, _ := domain.NewCoordinate(1, 0)
	assert.InDelta(t, 111.319, origin.DistanceTo(north), 0.01)
}

func TestNode(t *testing.T) {
	t.Run("rejects blank name and unknown kind", func(t *testing.T) {
		_, err := domain.NewStation("  ", 0, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = domain.NewNode("A", 0, 0, domain.NodeKind(0))
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)

		_, err = domain.NewStation("A", 91, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})

	t.Run("identity is the name", func(t *testing.T) {
		a1, _ := domain.NewStation("Nation", 48.848, 2.396)
		a2, _ := domain.NewPersonalizedNode("Nation", 10, 10)
		b, _ := domain.NewStation("Bastille", 48.853, 2.369)

		assert.True(t, a1.Is(a2))
		assert.False(t, a1.Is(b))
	})

	t.Run("schedule first write wins", func(t *testing.T) {
		s, err := domain.NewStation("Bastille", 48.853, 2.369)
		require.NoError(t, err)
		key := domain.ScheduleKey{Terminus: "Nation", Line: "1 variant 1"}

		assert.True(t, s.AddSchedule(key, 120))
		assert.False(t, s.AddSchedule(key, 60))

		v, ok := s.ScheduleFor(key)
		assert.True(t, ok)
		assert.Equal(t, 120, v)

		v, ok = s.ScheduleFor(domain.ScheduleKey{Terminus: "Nation", Line: "2 variant 1"})
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	})

	t.Run("personalized nodes have no schedule", func(t *testing.T) {
		p, err := domain.NewPersonalizedNode("(48.85, 2.35)", 48.85, 2.35)
		require.NoError(t, err)
		assert.True(t, p.IsPersonalized())
		assert.False(t, p.AddSchedule(domain.ScheduleKey{Terminus: "A", Line: "1"}, 10))
		assert.Empty(t, p.Schedules())
	})
}

func TestSegment(t *testing.T) {
	a, _ := domain.NewStation("A", 48.85, 2.35)
	b, _ := domain.NewStation("B", 48.86, 2.35)
	aAgain, _ := domain.NewStation("A", 48.85, 2.35)

	t.Run("invalid construction", func(t *testing.T) {
		cases := []struct {
			name string
			fn   func() error
		}{
			{"negative distance", func() error { _, err := domain.NewRailSegment(a, b, -1, 10, "1"); return err }},
			{"negative duration", func() error { _, err := domain.NewRailSegment(a, b, 1, -10, "1"); return err }},
			{"same endpoints", func() error { _, err := domain.NewRailSegment(a, aAgain, 1, 10, "1"); return err }},
			{"blank line", func() error { _, err := domain.NewRailSegment(a, b, 1, 10, " "); return err }},
			{"nil start", func() error { _, err := domain.NewWalkSegment(nil, b, 1); return err }},
			{"walk negative distance", func() error { _, err := domain.NewWalkSegment(a, b, -0.1); return err }},
			{"walk same endpoints", func() error { _, err := domain.NewWalkSegmentBetween(a, a); return err }},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.ErrorIs(t, tc.fn(), domain.ErrInvalidArgument)
			})
		}
	})

	t.Run("walk duration from fixed speed", func(t *testing.T) {
		seg, err := domain.NewWalkSegment(a, b, 1.0)
		require.NoError(t, err)
		assert.Equal(t, 818, seg.Duration())
		assert.True(t, seg.IsWalk())
		assert.Empty(t, seg.LineID())

		prev := -1
		for _, d := range []float64{0, 0.1, 0.5, 1, 2.5, 10} {
			got := domain.WalkingDuration(d)
			assert.GreaterOrEqual(t, got, prev)
			prev = got
		}
	})

	t.Run("walk between uses great-circle distance", func(t *testing.T) {
		seg, err := domain.NewWalkSegmentBetween(a, b)
		require.NoError(t, err)
		assert.InDelta(t, a.DistanceTo(b), seg.Distance(), 1e-12)
	})

	t.Run("rail identity includes the line", func(t *testing.T) {
		s1, _ := domain.NewRailSegment(a, b, 1, 60, "1 variant 1")
		s2, _ := domain.NewRailSegment(a, b, 2, 90, "1 variant 1")
		s3, _ := domain.NewRailSegment(a, b, 1, 60, "2 variant 1")

		assert.True(t, s1.Same(s2))
		assert.False(t, s1.Same(s3))
		assert.Equal(t, "1 variant 1", s1.LineID())
	})
}

func TestLine(t *testing.T) {
	a, _ := domain.NewStation("A", 48.85, 2.35)
	b, _ := domain.NewStation("B", 48.86, 2.35)

	line, err := domain.NewLine("7B variant 2", []*domain.Node{a, b, a}, []int{40, 10}, a)
	require.NoError(t, err)

	assert.Equal(t, "7B", line.BaseName())
	assert.Equal(t, []int{10, 40}, line.Departures())
	assert.Len(t, line.Stations(), 2)
	assert.True(t, line.HasStation("B"))
	assert.Equal(t, domain.ScheduleKey{Terminus: "A", Line: "7B variant 2"}, line.ScheduleKey())
	assert.Equal(t, "B", line.Direction().Name())

	t.Run("next departure", func(t *testing.T) {
		got, ok := line.NextDeparture(0, 15)
		assert.True(t, ok)
		assert.Equal(t, 40, got)

		got, ok = line.NextDeparture(5, 15)
		assert.True(t, ok)
		assert.Equal(t, 15, got)

		_, ok = line.NextDeparture(0, 41)
		assert.False(t, ok)
	})

	_, err = domain.NewLine("", nil, nil, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestVariantLineID(t *testing.T) {
	row := domain.TimetableRow{LineID: "3bis", TerminusName: "Gambetta", Departure: 3600, Variant: "1"}
	assert.Equal(t, "3bis variant 1", row.VariantLineID())
	assert.Equal(t, "3bis", domain.BaseLineName(row.VariantLineID()))
}
