package network

import (
	"go.uber.org/zap"

	"github.com/transit-planner/internal/domain"
)

// DiffuseSchedules writes, for every line, the cumulative ride time from its terminus into the
// schedule index of each station the line reaches. Offsets are the shortest ride over the line's
// own rail segments, so branching and looping lines are populated too; they are reported as a
// warning because a single terminus timetable rarely describes them well.
// Running it again leaves the index unchanged: existing entries are never overwritten.
func (g *Graph) DiffuseSchedules(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	for _, line := range g.Lines() {
		reached, branching := g.diffuseLine(line)
		if branching {
			logger.Warn("Line is not a simple path from its terminus",
				zap.String("line", line.Name()),
				zap.Int("stations_reached", reached),
			)
		}
	}
}

func (g *Graph) diffuseLine(line *domain.Line) (reached int, branching bool) {
	terminus := line.Terminus()
	if terminus == nil {
		return 0, false
	}
	start, ok := g.index[terminus.Name()]
	if !ok {
		return 0, false
	}

	key := line.ScheduleKey()
	settled := make([]bool, len(g.nodes))
	queue := newNodeQueue(len(g.nodes))
	queue.insert(start, terminus.Name(), 0)

	for queue.Len() > 0 {
		u, w := queue.popMin()
		settled[u] = true
		g.nodes[u].AddSchedule(key, int(w))
		reached++

		next := 0
		for _, seg := range g.adjacency[u] {
			if !seg.IsRail() || seg.LineID() != line.Name() {
				continue
			}
			next++
			v := g.index[seg.End().Name()]
			if settled[v] {
				branching = true
				continue
			}
			cand := w + float64(seg.Duration())
			switch {
			case queue.contains(v):
				if cand < queue.weightOf(v) {
					queue.decrease(v, cand)
				}
			default:
				queue.insert(v, seg.End().Name(), cand)
			}
		}
		if next > 1 {
			branching = true
		}
	}
	return reached, branching
}
