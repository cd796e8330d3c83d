package dto

import (
	"github.com/transit-planner/internal/domain"
	"github.com/transit-planner/internal/network"
)

const (
	ModeMetro = "METRO"
	ModeFoot  = "FOOT"
)

// ConvertNode maps a node to a path point
func ConvertNode(n *domain.Node) PathPoint {
	c := n.Coordinate()
	return PathPoint{Name: n.Name(), Point: domain.Point{Lat: c.Lat, Lon: c.Lon}}
}

// ConvertHop maps a reconstructed hop. The terminus shown to riders is the line's heading.
func ConvertHop(h network.Hop) PathSegment {
	seg := PathSegment{
		Start:     ConvertNode(h.From),
		End:       ConvertNode(h.To),
		Mode:      ModeFoot,
		Departure: h.Board,
		Arrival:   h.Arrival,
		Distance:  h.Distance,
	}
	if h.Line != nil {
		seg.Mode = ModeMetro
		seg.Line = h.Line.BaseName()
		if dir := h.Line.Direction(); dir != nil {
			seg.Terminus = dir.Name()
		}
	}
	return seg
}

// ConvertStation maps a station with the base lines serving it
func ConvertStation(n *domain.Node, lines []string) Station {
	c := n.Coordinate()
	return Station{Name: n.Name(), Lat: c.Lat, Lon: c.Lon, Lines: lines}
}

// ConvertLineSchedule maps one line variant
func ConvertLineSchedule(l *domain.Line) LineSchedule {
	s := LineSchedule{Line: l.Name(), Departures: l.Departures()}
	if s.Departures == nil {
		s.Departures = []int{}
	}
	if t := l.Terminus(); t != nil {
		s.Terminus = t.Name()
	}
	if d := l.Direction(); d != nil {
		s.Direction = d.Name()
	}
	return s
}
