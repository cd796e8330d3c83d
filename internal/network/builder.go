package network

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
)

// Build constructs the network from ingested records: stations, rail segments, lines with their
// timetables, the schedule index of every station and the complete walking overlay.
// The returned graph must not be mutated once it is shared with searches.
func Build(records *domain.NetworkRecords, logger *zap.Logger) (*Graph, error) {
	if records == nil {
		return nil, fmt.Errorf("%w: network records must not be nil", domain.ErrInvalidArgument)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	g := NewGraph()

	// 1. Stations
	for _, rec := range records.Stations {
		if g.StationByName(rec.Name) != nil {
			continue
		}
		if _, err := g.AddNode(rec.Name, rec.Latitude, rec.Longitude, domain.NodeStation); err != nil {
			return nil, fmt.Errorf("station %q: %w", rec.Name, err)
		}
	}

	// 2. Rail segments, accumulating line -> stations and the first-seen terminus
	var lineOrder []string
	lineStations := make(map[string][]*domain.Node)
	terminus := make(map[string]*domain.Node)

	for _, rec := range records.Segments {
		start := g.StationByName(rec.StartName)
		if start == nil {
			return nil, fmt.Errorf("segment %s -> %s: %w: %q", rec.StartName, rec.EndName, domain.ErrUnknownNode, rec.StartName)
		}
		end := g.StationByName(rec.EndName)
		if end == nil {
			return nil, fmt.Errorf("segment %s -> %s: %w: %q", rec.StartName, rec.EndName, domain.ErrUnknownNode, rec.EndName)
		}
		if _, err := g.AddRailSegment(start, end, rec.Distance, rec.Duration, rec.LineID); err != nil {
			return nil, fmt.Errorf("segment %s -> %s: %w", rec.StartName, rec.EndName, err)
		}

		if _, seen := terminus[rec.LineID]; !seen {
			terminus[rec.LineID] = start
			lineOrder = append(lineOrder, rec.LineID)
		}
		lineStations[rec.LineID] = append(lineStations[rec.LineID], start, end)
	}

	// 3. Lines with their timetables
	departures := make(map[string][]int)
	for _, row := range records.Timetables {
		key := row.VariantLineID()
		departures[key] = append(departures[key], row.Departure)
	}

	for _, id := range lineOrder {
		deps := departures[id]
		if len(deps) == 0 {
			logger.Warn("Line has no timetable", zap.String("line", id))
		}
		line, err := domain.NewLine(id, lineStations[id], deps, terminus[id])
		if err != nil {
			return nil, fmt.Errorf("line %q: %w", id, err)
		}
		g.AddLine(line)
	}

	// 4. Schedule index, then line order by ride time
	g.DiffuseSchedules(logger)
	for _, line := range g.lines {
		key := line.ScheduleKey()
		line.OrderStations(func(a, b *domain.Node) bool {
			oa, okA := a.ScheduleFor(key)
			ob, okB := b.ScheduleFor(key)
			if okA != okB {
				return okA
			}
			if oa != ob {
				return oa < ob
			}
			return a.Name() < b.Name()
		})
	}

	// 5. Walking overlay
	if err := g.addWalkingOverlay(); err != nil {
		return nil, err
	}

	stats := g.Stats()
	logger.Info("Network built",
		zap.Int("stations", stats.Stations),
		zap.Int("lines", stats.Lines),
		zap.Int("base_lines", stats.BaseLines),
		zap.Int("rail_segments", stats.RailSegments),
		zap.Int("walk_segments", stats.WalkSegments),
	)

	return g, nil
}

// addWalkingOverlay links every unordered pair of distinct stations with walk segments in both
// directions. O(n²) edges, computed once and shared by all searches.
func (g *Graph) addWalkingOverlay() error {
	stations := g.Stations()
	for i := 0; i < len(stations); i++ {
		for j := i + 1; j < len(stations); j++ {
			a, b := stations[i], stations[j]
			d := a.DistanceTo(b)
			if _, err := g.AddWalkSegment(a, b, d); err != nil {
				return fmt.Errorf("walk %s -> %s: %w", a.Name(), b.Name(), err)
			}
			if _, err := g.AddWalkSegment(b, a, d); err != nil {
				return fmt.Errorf("walk %s -> %s: %w", b.Name(), a.Name(), err)
			}
		}
	}
	return nil
}
