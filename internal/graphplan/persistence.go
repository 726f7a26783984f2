package graphplan

import "github.com/gitrdm/graphplan/internal/domain"

// persistenceActions builds the two no-op actions per literal in sm: a
// positive-persistence action that requires the literal true and re-asserts
// it true, and a negative-persistence action that requires it false and
// re-asserts it false. These let a literal "pass through" a level unchanged
// when no domain action is needed to preserve it; they exist only inside a
// PlanningGraph; a strips.Problem built from them would be meaningless.
func persistenceActions(sm domain.StateMap) []domain.GroundAction {
	actions := make([]domain.GroundAction, 0, 2*len(sm))
	for _, lit := range sm {
		posName := "Noop_pos(" + lit.Key() + ")"
		actions = append(actions, domain.NewGroundAction(
			posName,
			[]domain.Literal{lit}, nil,
			[]domain.Literal{lit}, nil,
			true,
		))
		negName := "Noop_neg(" + lit.Key() + ")"
		actions = append(actions, domain.NewGroundAction(
			negName,
			nil, []domain.Literal{lit},
			nil, []domain.Literal{lit},
			true,
		))
	}
	return actions
}
