package file_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/network"
	"github.com/transit-planner/internal/repository/file"
)

const mapData = `Nation;2.396,48.848;Avron;2.398,48.851;2 variant 1;1:30;6
Avron;2.398,48.851;Alexandre Dumas;2.394,48.856;2 variant 1;01:05;7

Alexandre Dumas;2.394,48.856;Philippe Auguste;2.390,48.858;2 variant 1;0:55;5
`

const timetableData = `2;Nation;05:30;1
2;Nation;5:45;1
2;Nation;24:10;1
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseMap(t *testing.T) {
	records := &domain.NetworkRecords{}
	require.NoError(t, file.ParseMap(context.Background(), strings.NewReader(mapData), records))

	require.Len(t, records.Stations, 4)
	assert.Equal(t, domain.StationRecord{Name: "Nation", Longitude: 2.396, Latitude: 48.848}, records.Stations[0])
	assert.Equal(t, "Philippe Auguste", records.Stations[3].Name)

	require.Len(t, records.Segments, 3)
	first := records.Segments[0]
	assert.Equal(t, "Nation", first.StartName)
	assert.Equal(t, "Avron", first.EndName)
	assert.Equal(t, "2 variant 1", first.LineID)
	assert.Equal(t, 90, first.Duration)
	assert.InDelta(t, 0.6, first.Distance, 1e-9)
	assert.Equal(t, 65, records.Segments[1].Duration)
	assert.Equal(t, 55, records.Segments[2].Duration)
}

func TestParseMap_Invalid(t *testing.T) {
	cases := map[string]string{
		"missing field":     "A;2.3,48.8;B;2.4,48.9;1 variant 1;1:00\n",
		"bad coordinates":   "A;2.3;B;2.4,48.9;1 variant 1;1:00;5\n",
		"latitude range":    "A;2.3,98.8;B;2.4,48.9;1 variant 1;1:00;5\n",
		"bad duration":      "A;2.3,48.8;B;2.4,48.9;1 variant 1;90;5\n",
		"seconds overflow":  "A;2.3,48.8;B;2.4,48.9;1 variant 1;1:75;5\n",
		"negative distance": "A;2.3,48.8;B;2.4,48.9;1 variant 1;1:00;-5\n",
		"blank line id":     "A;2.3,48.8;B;2.4,48.9; ;1:00;5\n",
		"same endpoints":    "A;2.3,48.8;A;2.3,48.8;1 variant 1;1:00;5\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			err := file.ParseMap(context.Background(), strings.NewReader(data), &domain.NetworkRecords{})
			assert.ErrorIs(t, err, domain.ErrInvalidArgument)
		})
	}
}

func TestParseTimetable(t *testing.T) {
	records := &domain.NetworkRecords{}
	require.NoError(t, file.ParseTimetable(context.Background(), strings.NewReader(timetableData), records))

	require.Len(t, records.Timetables, 3)
	assert.Equal(t, domain.TimetableRow{LineID: "2", TerminusName: "Nation", Departure: 19800, Variant: "1"}, records.Timetables[0])
	assert.Equal(t, 20700, records.Timetables[1].Departure)
	assert.Equal(t, 87000, records.Timetables[2].Departure)
	assert.Equal(t, "2 variant 1", records.Timetables[2].VariantLineID())

	err := file.ParseTimetable(context.Background(), strings.NewReader("2;Nation;5h30;1\n"), records)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestSource_Load(t *testing.T) {
	src := file.NewSource(
		writeFile(t, "map.csv", mapData),
		writeFile(t, "timetable.csv", timetableData),
		zap.NewNop(),
	)
	assert.Equal(t, "file", src.Name())

	records, err := src.Load(context.Background())
	require.NoError(t, err)

	g, err := network.Build(records, zap.NewNop())
	require.NoError(t, err)

	line := g.Line("2 variant 1")
	require.NotNil(t, line)
	assert.Equal(t, "Nation", line.Terminus().Name())
	assert.Equal(t, []int{19800, 20700, 87000}, line.Departures())

	offset, ok := g.StationByName("Philippe Auguste").ScheduleFor(line.ScheduleKey())
	require.True(t, ok)
	assert.Equal(t, 210, offset)

	t.Run("missing file", func(t *testing.T) {
		_, err := file.NewSource(filepath.Join(t.TempDir(), "nope.csv"), "", nil).Load(context.Background())
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
