package graphplan

import "github.com/gitrdm/graphplan/internal/domain"

// updateActionMutex computes pairwise mutex relations among aLevels[level],
// recording each discovered pair on both nodes' mutex lists. Two actions are
// mutex if the graph is serial and neither is a persistence action, or if
// any of inconsistent-effects, interference, or competing-needs holds.
func (g *PlanningGraph) updateActionMutex(level int) {
	aLevel := g.aLevels[level]
	for i := 0; i < len(aLevel); i++ {
		for j := i + 1; j < len(aLevel); j++ {
			if g.serialMutex(aLevel[i], aLevel[j]) ||
				inconsistentEffectsMutex(aLevel[i], aLevel[j]) ||
				g.interferenceMutex(aLevel[i], aLevel[j]) ||
				g.competingNeedsMutex(level, aLevel[i], aLevel[j]) {
				aLevel[i].mutex = append(aLevel[i].mutex, j)
				aLevel[j].mutex = append(aLevel[j].mutex, i)
			}
		}
	}
}

// serialMutex mutexes every pair of non-persistence actions when the graph
// is built in serial mode (at most one real action per level).
func (g *PlanningGraph) serialMutex(a1, a2 aNode) bool {
	if !g.serial {
		return false
	}
	if a1.action.IsPersistence() || a2.action.IsPersistence() {
		return false
	}
	return true
}

// inconsistentEffectsMutex holds when one action's add effect is the other's
// delete effect.
func inconsistentEffectsMutex(a1, a2 aNode) bool {
	for _, x := range a1.action.EffectAdd() {
		for _, y := range a2.action.EffectRem() {
			if x.Equal(y) {
				return true
			}
		}
	}
	for _, x := range a2.action.EffectAdd() {
		for _, y := range a1.action.EffectRem() {
			if x.Equal(y) {
				return true
			}
		}
	}
	return false
}

// interferenceMutex holds when one action's effect negates a precondition
// of the other.
func (g *PlanningGraph) interferenceMutex(a1, a2 aNode) bool {
	return interfereWith(a1.action, a2.action) || interfereWith(a2.action, a1.action)
}

func interfereWith(a1, a2 domain.GroundAction) bool {
	for _, x := range a1.EffectAdd() {
		for _, y := range a2.PrecondNeg() {
			if x.Equal(y) {
				return true
			}
		}
	}
	for _, x := range a1.EffectRem() {
		for _, y := range a2.PrecondPos() {
			if x.Equal(y) {
				return true
			}
		}
	}
	return false
}

// competingNeedsMutex holds when some precondition of a1 is mutex, at this
// level, with some precondition of a2.
func (g *PlanningGraph) competingNeedsMutex(level int, a1, a2 aNode) bool {
	sLevel := g.sLevels[level]
	for _, p1 := range a1.parents {
		for _, p2 := range a2.parents {
			if sNodesMutex(sLevel, p1.index, p2.index) {
				return true
			}
		}
	}
	return false
}

func sNodesMutex(sLevel []sNode, i, j int) bool {
	if i == j {
		return false
	}
	for _, m := range sLevel[i].mutex {
		if m == j {
			return true
		}
	}
	return false
}

// updateLiteralMutex computes pairwise mutex relations among sLevels[level].
// Two literal nodes are mutex if they negate each other, or if every action
// producing one is mutex with every action producing the other
// (inconsistent support).
func (g *PlanningGraph) updateLiteralMutex(level int) {
	sLevel := g.sLevels[level]
	aLevel := levelBefore(g.aLevels, level)
	for i := 0; i < len(sLevel); i++ {
		for j := i + 1; j < len(sLevel); j++ {
			if negationMutex(sLevel[i], sLevel[j]) || inconsistentSupportMutex(sLevel[i], sLevel[j], aLevel) {
				sLevel[i].mutex = append(sLevel[i].mutex, j)
				sLevel[j].mutex = append(sLevel[j].mutex, i)
			}
		}
	}
}

func levelBefore(aLevels [][]aNode, sLevelIdx int) []aNode {
	if sLevelIdx == 0 || sLevelIdx-1 >= len(aLevels) {
		return nil
	}
	return aLevels[sLevelIdx-1]
}

func negationMutex(n1, n2 sNode) bool {
	return n1.literal.Equal(n2.literal) && n1.positive != n2.positive
}

// inconsistentSupportMutex holds when n1 and n2 have at least one producing
// action each, and every pair of their producing actions is mutex. Two
// literals with no producing actions at this level are not mutex by this
// rule (there is nothing to be inconsistent about).
func inconsistentSupportMutex(n1, n2 sNode, aLevel []aNode) bool {
	if len(n1.parents) == 0 || len(n2.parents) == 0 {
		return false
	}
	for _, p1 := range n1.parents {
		for _, p2 := range n2.parents {
			if !actionsMutex(aLevel, p1.index, p2.index) {
				return false
			}
		}
	}
	return true
}

func actionsMutex(aLevel []aNode, i, j int) bool {
	if i == j {
		return false
	}
	for _, m := range aLevel[i].mutex {
		if m == j {
			return true
		}
	}
	return false
}
