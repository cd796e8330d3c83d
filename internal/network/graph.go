// Package network holds the in-memory transit graph and the time-dependent path search over it.
//
// A Graph is built once with Build and is read-only afterwards; any number of searches may run
// against it concurrently because every search allocates its own working state.
package network

import (
	"fmt"
	"sort"
	"strings"

	"github.com/transit-planner/internal/domain"
)

// Graph - adjacency structure plus station and line registries
type Graph struct {
	nodes     []*domain.Node
	index     map[string]int
	adjacency [][]*domain.Segment

	stations     map[string]*domain.Node
	stationsFold map[string]*domain.Node
	lines        map[string]*domain.Line

	railSegments int
	walkSegments int
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index:        make(map[string]int),
		stations:     make(map[string]*domain.Node),
		stationsFold: make(map[string]*domain.Node),
		lines:        make(map[string]*domain.Line),
	}
}

// AddNode creates a node of the requested kind and registers it with no outgoing segments.
// Names are the node identity, so a second registration of a name fails with ErrDuplicateNode.
func (g *Graph) AddNode(name string, lat, lon float64, kind domain.NodeKind) (*domain.Node, error) {
	node, err := domain.NewNode(name, lat, lon, kind)
	if err != nil {
		return nil, err
	}
	if _, exists := g.index[name]; exists {
		return nil, fmt.Errorf("%w: %q", domain.ErrDuplicateNode, name)
	}

	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, node)
	g.adjacency = append(g.adjacency, nil)

	if node.IsStation() {
		g.stations[name] = node
		fold := strings.ToLower(name)
		if _, taken := g.stationsFold[fold]; !taken {
			g.stationsFold[fold] = node
		}
	}
	return node, nil
}

// AddRailSegment appends a rail edge to the start node's outgoing set.
func (g *Graph) AddRailSegment(start, end *domain.Node, distance float64, duration int, lineID string) (*domain.Segment, error) {
	s, e, err := g.registered(start, end)
	if err != nil {
		return nil, err
	}
	seg, err := domain.NewRailSegment(s, e, distance, duration, lineID)
	if err != nil {
		return nil, err
	}
	g.addSegment(seg)
	g.railSegments++
	return seg, nil
}

// AddWalkSegment appends a walk edge to the start node's outgoing set.
func (g *Graph) AddWalkSegment(start, end *domain.Node, distance float64) (*domain.Segment, error) {
	s, e, err := g.registered(start, end)
	if err != nil {
		return nil, err
	}
	seg, err := domain.NewWalkSegment(s, e, distance)
	if err != nil {
		return nil, err
	}
	g.addSegment(seg)
	g.walkSegments++
	return seg, nil
}

// AddLine registers a line under its name, replacing any previous line of that name.
func (g *Graph) AddLine(line *domain.Line) {
	g.lines[line.Name()] = line
}

func (g *Graph) addSegment(seg *domain.Segment) {
	i := g.index[seg.Start().Name()]
	g.adjacency[i] = append(g.adjacency[i], seg)
}

// registered maps both endpoints to the graph-owned instances.
func (g *Graph) registered(start, end *domain.Node) (*domain.Node, *domain.Node, error) {
	if start == nil || end == nil {
		return nil, nil, fmt.Errorf("%w: segment endpoints must not be nil", domain.ErrInvalidArgument)
	}
	s, ok := g.node(start.Name())
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownNode, start.Name())
	}
	e, ok := g.node(end.Name())
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnknownNode, end.Name())
	}
	return s, e, nil
}

func (g *Graph) node(name string) (*domain.Node, bool) {
	i, ok := g.index[name]
	if !ok {
		return nil, false
	}
	return g.nodes[i], true
}

// StationByName is an exact lookup; nil when absent.
func (g *Graph) StationByName(name string) *domain.Node {
	return g.stations[name]
}

// StationByNameFold tries an exact lookup first, then a case-insensitive one.
func (g *Graph) StationByNameFold(name string) *domain.Node {
	if s, ok := g.stations[name]; ok {
		return s
	}
	return g.stationsFold[strings.ToLower(name)]
}

// Contains reports whether a node of that name is registered.
func (g *Graph) Contains(node *domain.Node) bool {
	if node == nil {
		return false
	}
	_, ok := g.index[node.Name()]
	return ok
}

// Nodes returns every registered node in registration order.
func (g *Graph) Nodes() []*domain.Node {
	return append([]*domain.Node(nil), g.nodes...)
}

// Stations returns all stations sorted by name.
func (g *Graph) Stations() []*domain.Node {
	out := make([]*domain.Node, 0, len(g.stations))
	for _, s := range g.stations {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// OutgoingSegments returns a copy of the node's outgoing set; nil for unknown nodes.
func (g *Graph) OutgoingSegments(node *domain.Node) []*domain.Segment {
	if node == nil {
		return nil
	}
	i, ok := g.index[node.Name()]
	if !ok {
		return nil
	}
	return append([]*domain.Segment(nil), g.adjacency[i]...)
}

// OutgoingRailSegments filters the outgoing set to rail edges.
func (g *Graph) OutgoingRailSegments(node *domain.Node) []*domain.Segment {
	var out []*domain.Segment
	for _, seg := range g.OutgoingSegments(node) {
		if seg.IsRail() {
			out = append(out, seg)
		}
	}
	return out
}

// Line looks a line up by its full (variant) name.
func (g *Graph) Line(name string) *domain.Line {
	return g.lines[name]
}

// Lines returns all lines sorted by name.
func (g *Graph) Lines() []*domain.Line {
	out := make([]*domain.Line, 0, len(g.lines))
	for _, l := range g.lines {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// LineForSegment resolves a rail segment's line; nil for walk segments or unknown ids.
func (g *Graph) LineForSegment(seg *domain.Segment) *domain.Line {
	if seg == nil || !seg.IsRail() {
		return nil
	}
	return g.lines[seg.LineID()]
}

// Stats summarises the graph size.
func (g *Graph) Stats() domain.NetworkStats {
	bases := make(map[string]struct{}, len(g.lines))
	for name := range g.lines {
		bases[domain.BaseLineName(name)] = struct{}{}
	}
	return domain.NetworkStats{
		Stations:     len(g.stations),
		Lines:        len(g.lines),
		BaseLines:    len(bases),
		RailSegments: g.railSegments,
		WalkSegments: g.walkSegments,
	}
}
