package graphplan

import "math"

// HLevelSum sums, over every goal literal, the index of the first S-level at
// which that literal appears as a positive node. If some goal literal never
// appears (the graph levels off without achieving it), the heuristic returns
// math.MaxInt as the "unreachable" sentinel — admissible since no real plan
// can do better than infinity either.
func (g *PlanningGraph) HLevelSum() int {
	goals := g.problem.Goal()
	remaining := make(map[string]bool, len(goals))
	for _, lit := range goals {
		remaining[lit.Key()] = true
	}

	sum := 0
	for level, sLevel := range g.sLevels {
		if len(remaining) == 0 {
			break
		}
		for _, n := range sLevel {
			if !n.positive {
				continue
			}
			if remaining[n.literal.Key()] {
				delete(remaining, n.literal.Key())
				sum += level
			}
		}
	}
	if len(remaining) > 0 {
		return math.MaxInt
	}
	return sum
}
