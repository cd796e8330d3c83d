package network

import (
	"fmt"
	"math"

	"github.com/transit-planner/internal/domain"
)

// SearchOptions selects the allowed modes and the optimisation criterion.
type SearchOptions struct {
	AllowRail bool
	AllowWalk bool
	// OptimizeByTime weighs edges by clock time (seconds since midnight), otherwise by km.
	OptimizeByTime bool
}

// Label is the predecessor map entry of a reached node.
type Label struct {
	Node     *domain.Node
	Previous *domain.Node // nil for the start node
	Weight   float64      // accumulated weight on arrival at Node
	Board    float64      // weight at which the incoming edge was entered
	Line     *domain.Line // nil for walking and for the start node
	Segment  *domain.Segment
}

// PredecessorMap maps node names to their best label. Nodes that were never reached are absent.
type PredecessorMap map[string]Label

// search holds the working state of a single query.
type search struct {
	g     *Graph
	start *domain.Node
	end   *domain.Node
	opts  SearchOptions

	extra      []*domain.Node // personalized endpoints, ids follow the graph's nodes
	candidates int

	visited []bool
	queue   *nodeQueue
	labels  PredecessorMap
}

// Search runs the time- or distance-dependent Dijkstra from start and stops as soon as end is
// settled. end may be nil to explore the whole reachable component. Personalized endpoints are
// joined to every other node by synthetic walk segments for this call only.
func (g *Graph) Search(start, end *domain.Node, startWeight float64, opts SearchOptions) (PredecessorMap, error) {
	if start == nil {
		return nil, fmt.Errorf("%w: start node must not be nil", domain.ErrInvalidArgument)
	}
	if startWeight < 0 || math.IsNaN(startWeight) || math.IsInf(startWeight, 0) {
		return nil, fmt.Errorf("%w: start weight must be a non-negative number", domain.ErrInvalidArgument)
	}
	if !opts.AllowRail && !opts.AllowWalk {
		return nil, fmt.Errorf("%w: at least one mode must be allowed", domain.ErrInvalidArgument)
	}

	s := &search{g: g, opts: opts}
	var err error
	if s.start, err = s.resolve(start); err != nil {
		return nil, err
	}
	if end != nil {
		if s.end, err = s.resolve(end); err != nil {
			return nil, err
		}
	}
	s.candidates = len(g.nodes) + len(s.extra)
	s.visited = make([]bool, s.candidates)
	s.queue = newNodeQueue(s.candidates)
	s.labels = make(PredecessorMap)

	s.run(startWeight)
	return s.labels, nil
}

// resolve maps a query endpoint to a candidate node: the graph's own instance when the name is
// registered, otherwise an ephemeral slot for personalized nodes.
func (s *search) resolve(node *domain.Node) (*domain.Node, error) {
	if n, ok := s.g.node(node.Name()); ok {
		return n, nil
	}
	if !node.IsPersonalized() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownNode, node.Name())
	}
	for _, e := range s.extra {
		if e.Is(node) {
			return e, nil
		}
	}
	s.extra = append(s.extra, node)
	return node, nil
}

func (s *search) id(node *domain.Node) int {
	if i, ok := s.g.index[node.Name()]; ok {
		return i
	}
	for i, e := range s.extra {
		if e.Is(node) {
			return len(s.g.nodes) + i
		}
	}
	return -1
}

func (s *search) nodeAt(id int) *domain.Node {
	if id < len(s.g.nodes) {
		return s.g.nodes[id]
	}
	return s.extra[id-len(s.g.nodes)]
}

func (s *search) run(startWeight float64) {
	startID := s.id(s.start)
	s.labels[s.start.Name()] = Label{Node: s.start, Weight: startWeight, Board: startWeight}
	s.queue.insert(startID, s.start.Name(), startWeight)

	for s.queue.Len() > 0 {
		u, w := s.queue.popMin()
		s.visited[u] = true
		current := s.nodeAt(u)

		if s.end != nil && current.Is(s.end) {
			return
		}

		for _, seg := range s.edges(u, current) {
			s.relax(current, w, seg)
		}
	}
}

// edges returns the mode-filtered candidate edges leaving current.
func (s *search) edges(u int, current *domain.Node) []*domain.Segment {
	var out []*domain.Segment
	keep := func(seg *domain.Segment) {
		if seg.IsRail() && !s.opts.AllowRail {
			return
		}
		if seg.IsWalk() && !s.opts.AllowWalk {
			return
		}
		out = append(out, seg)
	}

	if current.IsPersonalized() && current.Is(s.start) {
		// walk from anywhere: one synthetic edge to every other candidate
		for id := 0; id < s.candidates; id++ {
			if id == u {
				continue
			}
			if seg, err := domain.NewWalkSegmentBetween(current, s.nodeAt(id)); err == nil {
				keep(seg)
			}
		}
		return out
	}

	if u < len(s.g.nodes) {
		for _, seg := range s.g.adjacency[u] {
			keep(seg)
		}
	}
	for _, p := range []*domain.Node{s.start, s.end} {
		if p == nil || !p.IsPersonalized() || p.Is(current) {
			continue
		}
		if pid := s.id(p); s.visited[pid] {
			continue
		}
		if seg, err := domain.NewWalkSegmentBetween(current, p); err == nil {
			keep(seg)
		}
	}
	return out
}

func (s *search) relax(current *domain.Node, w float64, seg *domain.Segment) {
	v := s.id(seg.End())
	if v < 0 || s.visited[v] {
		return
	}

	var board, total float64
	switch {
	case !s.opts.OptimizeByTime:
		board = w
		total = seg.Distance() + w
	case seg.IsRail():
		dep, ok := s.g.NextFeasibleDeparture(seg, w)
		if !ok {
			return
		}
		board = dep
		total = dep + float64(seg.Duration())
	default:
		board = w
		total = w + float64(seg.Duration())
	}

	label := Label{
		Node:     s.nodeAt(v),
		Previous: current,
		Weight:   total,
		Board:    board,
		Line:     s.g.LineForSegment(seg),
		Segment:  seg,
	}

	if s.queue.contains(v) {
		if total < s.queue.weightOf(v) {
			s.queue.decrease(v, total)
			s.labels[label.Node.Name()] = label
		}
		return
	}
	s.queue.insert(v, label.Node.Name(), total)
	s.labels[label.Node.Name()] = label
}

// NextFeasibleDeparture returns the earliest time a train of seg's line passes seg's start
// station no earlier than readyAt: the first terminus departure d with d+offset >= readyAt,
// where offset is the station's ride time from the terminus. Lines without a terminus or
// stations without an offset for the line cannot be boarded.
func (g *Graph) NextFeasibleDeparture(seg *domain.Segment, readyAt float64) (float64, bool) {
	line := g.LineForSegment(seg)
	if line == nil || line.Terminus() == nil {
		return 0, false
	}
	offset, ok := seg.Start().ScheduleFor(line.ScheduleKey())
	if !ok {
		return 0, false
	}
	dep, ok := line.NextDeparture(offset, int(math.Ceil(readyAt)))
	if !ok {
		return 0, false
	}
	return float64(dep), true
}
