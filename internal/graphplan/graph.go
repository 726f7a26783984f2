package graphplan

import (
	"github.com/gitrdm/graphplan/internal/domain"
	domainerrors "github.com/gitrdm/graphplan/internal/domain/errors"
	"github.com/gitrdm/graphplan/internal/strips"
	"github.com/rs/zerolog/log"
)

// PlanningGraph is a leveled Graphplan planning graph built from a single
// state of a strips.Problem. It alternates S-levels (literal nodes) and
// A-levels (action nodes, including synthesized persistence actions), with
// mutex relations computed within each level. A graph is built once, by
// Build, and is read-only afterward.
type PlanningGraph struct {
	problem      *strips.Problem
	serial       bool
	shortCircuit bool

	preconds strips.PreconditionIndex

	sLevels [][]sNode
	aLevels [][]aNode

	built bool
}

// New constructs an unbuilt PlanningGraph rooted at state. serial forces
// every pair of non-persistence actions within a level to be mutex (the
// "serial planning graph" restriction used for heuristic extraction).
// shortCircuit skips mutex computation entirely and stops as soon as every
// goal literal has appeared in the most recent S-level.
func New(problem *strips.Problem, state domain.StateID, serial, shortCircuit bool) *PlanningGraph {
	combined := append([]domain.GroundAction(nil), problem.Catalogue().Actions()...)
	combined = append(combined, persistenceActions(problem.StateMap())...)
	return &PlanningGraph{
		problem:      problem,
		serial:       serial,
		shortCircuit: shortCircuit,
		preconds:     strips.NewPreconditionIndex(combined),
	}
}

// Build constructs the graph's levels starting from state. Build may only be
// called once per PlanningGraph; calling it again reports a
// GraphMisuseError.
func (g *PlanningGraph) Build(state domain.StateID) error {
	if g.built {
		return &domainerrors.GraphMisuseError{Reason: "planning graph already built; construct a new one for each state"}
	}
	fs, err := domain.DecodeState(state, g.problem.StateMap())
	if err != nil {
		return err
	}

	level0 := make([]sNode, 0, len(fs.Pos)+len(fs.Neg))
	for _, lit := range fs.Pos {
		level0 = append(level0, sNode{literal: lit, positive: true})
	}
	for _, lit := range fs.Neg {
		level0 = append(level0, sNode{literal: lit, positive: false})
	}
	g.sLevels = append(g.sLevels, level0)
	g.built = true

	goalSet := make(map[string]bool, len(g.problem.Goal()))
	for _, lit := range g.problem.Goal() {
		goalSet[literalKey(lit, true)] = true
	}

	for {
		level := len(g.sLevels) - 1
		aLevel := g.buildActionLevel(level)
		g.aLevels = append(g.aLevels, aLevel)
		if !g.shortCircuit {
			g.updateActionMutex(level)
		}

		nextLevel := g.buildLiteralLevel(level)
		g.sLevels = append(g.sLevels, nextLevel)
		if !g.shortCircuit {
			g.updateLiteralMutex(level + 1)
		}

		log.Debug().
			Int("level", level+1).
			Int("s_nodes", len(nextLevel)).
			Int("a_nodes", len(aLevel)).
			Msg("planning graph level built")

		if g.shortCircuit && g.goalsSatisfied(level+1, goalSet) {
			return nil
		}
		if sameLiteralSet(g.sLevels[level], nextLevel) {
			return nil
		}
	}
}

func (g *PlanningGraph) goalsSatisfied(sLevelIdx int, goalSet map[string]bool) bool {
	have := make(map[string]bool, len(g.sLevels[sLevelIdx]))
	for _, n := range g.sLevels[sLevelIdx] {
		if n.positive {
			have[literalKey(n.literal, true)] = true
		}
	}
	for k := range goalSet {
		if !have[k] {
			return false
		}
	}
	return true
}

// buildActionLevel admits every action whose preconditions are ALL present,
// at the required polarity, as literal nodes in sLevels[level]. This is the
// corrected Graphplan rule: an action is a candidate only if every one of
// its preconditions is satisfiable at this level, not merely one of them.
func (g *PlanningGraph) buildActionLevel(level int) []aNode {
	sLevel := g.sLevels[level]
	posIndex := make(map[string]int, len(sLevel))
	negIndex := make(map[string]int, len(sLevel))
	for i, n := range sLevel {
		if n.positive {
			posIndex[n.literal.Key()] = i
		} else {
			negIndex[n.literal.Key()] = i
		}
	}

	candidates := make(map[string]domain.GroundAction)
	for _, n := range sLevel {
		for _, a := range g.preconds.ActionsRequiring(n.literal, n.positive) {
			candidates[a.Name()] = a
		}
	}

	var aLevel []aNode
	for _, action := range candidates {
		parents, ok := allPreconditionHandles(action, level, posIndex, negIndex)
		if !ok {
			continue
		}
		aIdx := len(aLevel)
		aLevel = append(aLevel, aNode{action: action, parents: parents})
		for _, p := range parents {
			sLevel[p.index].children = append(sLevel[p.index].children, aHandle{level: level, index: aIdx})
		}
	}
	g.sLevels[level] = sLevel
	return aLevel
}

func allPreconditionHandles(action domain.GroundAction, level int, posIndex, negIndex map[string]int) ([]sHandle, bool) {
	handles := make([]sHandle, 0, len(action.PrecondPos())+len(action.PrecondNeg()))
	for _, lit := range action.PrecondPos() {
		idx, ok := posIndex[lit.Key()]
		if !ok {
			return nil, false
		}
		handles = append(handles, sHandle{level: level, index: idx})
	}
	for _, lit := range action.PrecondNeg() {
		idx, ok := negIndex[lit.Key()]
		if !ok {
			return nil, false
		}
		handles = append(handles, sHandle{level: level, index: idx})
	}
	return handles, true
}

// buildLiteralLevel gathers every distinct (literal, polarity) pair produced
// as an effect by some node in aLevels[level], linking each to every A-node
// that produces it.
func (g *PlanningGraph) buildLiteralLevel(level int) []sNode {
	aLevel := g.aLevels[level]
	index := make(map[string]int)
	var sLevel []sNode

	addEffect := func(lit domain.Literal, positive bool, aIdx int) {
		key := literalKey(lit, positive)
		idx, ok := index[key]
		if !ok {
			idx = len(sLevel)
			sLevel = append(sLevel, sNode{literal: lit, positive: positive})
			index[key] = idx
		}
		sLevel[idx].parents = append(sLevel[idx].parents, aHandle{level: level, index: aIdx})
	}

	for aIdx, an := range aLevel {
		for _, lit := range an.action.EffectAdd() {
			addEffect(lit, true, aIdx)
		}
		for _, lit := range an.action.EffectRem() {
			addEffect(lit, false, aIdx)
		}
	}

	for aIdx := range aLevel {
		for _, lit := range aLevel[aIdx].action.EffectAdd() {
			aLevel[aIdx].children = append(aLevel[aIdx].children, sHandle{level: level + 1, index: index[literalKey(lit, true)]})
		}
		for _, lit := range aLevel[aIdx].action.EffectRem() {
			aLevel[aIdx].children = append(aLevel[aIdx].children, sHandle{level: level + 1, index: index[literalKey(lit, false)]})
		}
	}

	return sLevel
}

func literalKey(lit domain.Literal, positive bool) string {
	if positive {
		return "+" + lit.Key()
	}
	return "-" + lit.Key()
}

func sameLiteralSet(a, b []sNode) bool {
	if len(a) != len(b) {
		return false
	}
	keys := make(map[string]bool, len(a))
	for _, n := range a {
		keys[literalKey(n.literal, n.positive)] = true
	}
	for _, n := range b {
		if !keys[literalKey(n.literal, n.positive)] {
			return false
		}
	}
	return true
}

// Levels returns the number of S-levels built (including level 0).
func (g *PlanningGraph) Levels() int { return len(g.sLevels) }
