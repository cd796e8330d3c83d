package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Line is a rail line variant. Two lines are equal iff their names match.
type Line struct {
	name       string
	stations   []*Node
	departures []int // seconds since midnight at the terminus, ascending
	terminus   *Node
}

// NewLine copies stations and sorts departures. Departures may exceed 24h for late runs.
func NewLine(name string, stations []*Node, departures []int, terminus *Node) (*Line, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: line name must not be blank", ErrInvalidArgument)
	}

	l := &Line{
		name:       name,
		stations:   make([]*Node, 0, len(stations)),
		departures: append([]int(nil), departures...),
		terminus:   terminus,
	}
	seen := make(map[string]struct{}, len(stations))
	for _, s := range stations {
		if s == nil {
			continue
		}
		if _, ok := seen[s.Name()]; ok {
			continue
		}
		seen[s.Name()] = struct{}{}
		l.stations = append(l.stations, s)
	}
	sort.Ints(l.departures)
	return l, nil
}

func (l *Line) Name() string    { return l.name }
func (l *Line) Terminus() *Node { return l.terminus }

// BaseName is the line id without its variant suffix: the token before the first space.
func (l *Line) BaseName() string {
	return BaseLineName(l.name)
}

// BaseLineName strips the variant suffix from a line id.
func BaseLineName(name string) string {
	if i := strings.IndexByte(name, ' '); i >= 0 {
		return name[:i]
	}
	return name
}

// Stations returns the served stations in line order.
func (l *Line) Stations() []*Node {
	return append([]*Node(nil), l.stations...)
}

// Departures returns a copy of the sorted terminus departures.
func (l *Line) Departures() []int {
	return append([]int(nil), l.departures...)
}

// HasStation reports whether the line serves the named station.
func (l *Line) HasStation(name string) bool {
	for _, s := range l.stations {
		if s.Name() == name {
			return true
		}
	}
	return false
}

// Direction is the last station in line order, used as the heading label.
func (l *Line) Direction() *Node {
	if len(l.stations) == 0 {
		return nil
	}
	return l.stations[len(l.stations)-1]
}

// ScheduleKey is the key this line's offsets are stored under.
func (l *Line) ScheduleKey() ScheduleKey {
	key := ScheduleKey{Line: l.name}
	if l.terminus != nil {
		key.Terminus = l.terminus.Name()
	}
	return key
}

// NextDeparture returns the earliest passage d+offset >= readyAt.
func (l *Line) NextDeparture(offset, readyAt int) (int, bool) {
	i := sort.Search(len(l.departures), func(i int) bool {
		return l.departures[i]+offset >= readyAt
	})
	if i == len(l.departures) {
		return 0, false
	}
	return l.departures[i] + offset, true
}

// OrderStations reorders the served stations with less. Only called while the network is built.
func (l *Line) OrderStations(less func(a, b *Node) bool) {
	sort.SliceStable(l.stations, func(i, j int) bool {
		return less(l.stations[i], l.stations[j])
	})
}

func (l *Line) String() string {
	return "Line{" + l.name + "}"
}
