package network

import "github.com/transit-planner/internal/domain"

// Hop is one directed, time-annotated leg of a reconstructed path.
type Hop struct {
	From      *domain.Node
	To        *domain.Node
	Departure float64 // weight when the traveller is at From
	Board     float64 // weight when the edge is entered, later than Departure when waiting for a train
	Arrival   float64 // weight at To
	Distance  float64 // km
	Line      *domain.Line
}

// IsWalk reports whether the hop is on foot.
func (h Hop) IsWalk() bool { return h.Line == nil }

// Reconstruct walks the predecessor links back from end and returns the hops in start-to-end
// order. An end that was never reached yields an empty slice.
func Reconstruct(pred PredecessorMap, start, end *domain.Node, startWeight float64) []Hop {
	if start == nil || end == nil {
		return nil
	}

	var reversed []Hop
	current := end.Name()
	for steps := 0; current != start.Name() && steps <= len(pred); steps++ {
		label, ok := pred[current]
		if !ok || label.Previous == nil {
			break
		}

		departure := startWeight
		if prev, ok := pred[label.Previous.Name()]; ok {
			departure = prev.Weight
		}
		hop := Hop{
			From:      label.Previous,
			To:        label.Node,
			Departure: departure,
			Board:     label.Board,
			Arrival:   label.Weight,
			Line:      label.Line,
		}
		if label.Segment != nil {
			hop.Distance = label.Segment.Distance()
		}
		reversed = append(reversed, hop)
		current = label.Previous.Name()
	}

	hops := make([]Hop, len(reversed))
	for i, h := range reversed {
		hops[len(reversed)-1-i] = h
	}
	return hops
}

// MergeWalkingHops collapses each run of consecutive walking hops into one hop from the run's
// first origin to its last destination, keeping the first departure and the last arrival.
func MergeWalkingHops(hops []Hop) []Hop {
	result := make([]Hop, 0, len(hops))
	var walk *Hop
	for _, h := range hops {
		if !h.IsWalk() {
			if walk != nil {
				result = append(result, *walk)
				walk = nil
			}
			result = append(result, h)
			continue
		}
		if walk == nil {
			merged := h
			walk = &merged
			continue
		}
		walk.To = h.To
		walk.Arrival = h.Arrival
		walk.Distance += h.Distance
	}
	if walk != nil {
		result = append(result, *walk)
	}
	return result
}

// BestPath searches, reconstructs and merges walking legs in one call.
func (g *Graph) BestPath(start, end *domain.Node, startWeight float64, opts SearchOptions) ([]Hop, error) {
	pred, err := g.Search(start, end, startWeight, opts)
	if err != nil {
		return nil, err
	}
	return MergeWalkingHops(Reconstruct(pred, start, end, startWeight)), nil
}
