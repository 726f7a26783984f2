package strips

import "github.com/gitrdm/graphplan/internal/domain"

// litPolarity is a map key combining a literal with the polarity an action
// requires of it.
type litPolarity struct {
	key      string
	positive bool
}

// PreconditionIndex maps each (literal, polarity) pair that appears as some
// action's precondition to the set of actions that require it. It is built
// once, eagerly, and never mutated afterward: NewProblem builds one over the
// catalogue, and each PlanningGraph builds its own over the catalogue plus
// persistence actions to find A-level candidates by literal lookup.
// Problem.Actions does not use it; it checks every catalogue action.
type PreconditionIndex struct {
	byLiteral map[litPolarity][]domain.GroundAction
}

// NewPreconditionIndex builds the index over actions.
func NewPreconditionIndex(actions []domain.GroundAction) PreconditionIndex {
	idx := PreconditionIndex{byLiteral: make(map[litPolarity][]domain.GroundAction)}
	for _, a := range actions {
		for _, lit := range a.PrecondPos() {
			k := litPolarity{key: lit.Key(), positive: true}
			idx.byLiteral[k] = append(idx.byLiteral[k], a)
		}
		for _, lit := range a.PrecondNeg() {
			k := litPolarity{key: lit.Key(), positive: false}
			idx.byLiteral[k] = append(idx.byLiteral[k], a)
		}
	}
	return idx
}

// ActionsRequiring returns every action that requires lit to hold (positive)
// or to not hold (!positive) as a precondition. Both polarities of every
// literal are valid lookups even when no action requires that polarity; the
// result is simply empty in that case.
func (idx PreconditionIndex) ActionsRequiring(lit domain.Literal, positive bool) []domain.GroundAction {
	return idx.byLiteral[litPolarity{key: lit.Key(), positive: positive}]
}
