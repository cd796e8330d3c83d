package domain

import (
	"fmt"
	"strings"
)

// NodeKind tags the Node variants.
type NodeKind int

const (
	// NodeStation is a fixed network station owning a schedule index.
	NodeStation NodeKind = iota + 1
	// NodePersonalized is an ephemeral user-supplied point, never stored in the graph.
	NodePersonalized
)

func (k NodeKind) String() string {
	switch k {
	case NodeStation:
		return "station"
	case NodePersonalized:
		return "personalized"
	default:
		return "unknown"
	}
}

// ScheduleKey identifies a (terminus, line) pair by their names.
type ScheduleKey struct {
	Terminus string
	Line     string
}

// Node is a graph vertex. Two nodes are the same vertex iff their names match.
// Name, coordinate and kind never change after construction.
type Node struct {
	name  string
	coord Coordinate
	kind  NodeKind

	// cumulative ride time in seconds from a terminus, stations only
	schedules map[ScheduleKey]int
}

// NewNode creates a node of the requested kind.
func NewNode(name string, lat, lon float64, kind NodeKind) (*Node, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: node name must not be blank", ErrInvalidArgument)
	}
	coord, err := NewCoordinate(lat, lon)
	if err != nil {
		return nil, err
	}

	n := &Node{name: name, coord: coord, kind: kind}
	switch kind {
	case NodeStation:
		n.schedules = make(map[ScheduleKey]int)
	case NodePersonalized:
	default:
		return nil, fmt.Errorf("%w: node kind must be specified", ErrInvalidArgument)
	}
	return n, nil
}

// NewStation creates a station node.
func NewStation(name string, lat, lon float64) (*Node, error) {
	return NewNode(name, lat, lon, NodeStation)
}

// NewPersonalizedNode creates a free-form query endpoint.
func NewPersonalizedNode(name string, lat, lon float64) (*Node, error) {
	return NewNode(name, lat, lon, NodePersonalized)
}

func (n *Node) Name() string           { return n.name }
func (n *Node) Coordinate() Coordinate { return n.coord }
func (n *Node) Kind() NodeKind         { return n.kind }
func (n *Node) IsStation() bool        { return n.kind == NodeStation }
func (n *Node) IsPersonalized() bool   { return n.kind == NodePersonalized }

// Is reports whether both nodes denote the same vertex.
func (n *Node) Is(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	return n.name == other.name
}

// DistanceTo returns the great-circle distance in kilometres.
func (n *Node) DistanceTo(other *Node) float64 {
	return n.coord.DistanceTo(other.coord)
}

// AddSchedule records the offset for key unless one is already present.
// It reports whether the value was written.
func (n *Node) AddSchedule(key ScheduleKey, seconds int) bool {
	if n.schedules == nil {
		return false
	}
	if _, exists := n.schedules[key]; exists {
		return false
	}
	n.schedules[key] = seconds
	return true
}

// ScheduleFor returns the offset for key; a miss yields (0, false).
func (n *Node) ScheduleFor(key ScheduleKey) (int, bool) {
	v, ok := n.schedules[key]
	return v, ok
}

// Schedules returns a copy of the schedule index.
func (n *Node) Schedules() map[ScheduleKey]int {
	out := make(map[ScheduleKey]int, len(n.schedules))
	for k, v := range n.schedules {
		out[k] = v
	}
	return out
}

func (n *Node) String() string {
	return n.name + ": " + n.coord.String()
}
