package strips

import (
	"github.com/gitrdm/graphplan/internal/domain"
	domainerrors "github.com/gitrdm/graphplan/internal/domain/errors"
	"github.com/rs/zerolog/log"

	"github.com/google/uuid"
)

// Problem bundles a state map, an initial state, a goal, and a grounded
// action catalogue into the object the search layer and the planning graph
// both consume. A Problem is immutable after NewProblem returns: the
// catalogue and precondition index are populated once during construction
// and never written again, so a *Problem is safe for concurrent read-only
// use by a parallelized external search driver.
type Problem struct {
	id         uuid.UUID
	stateMap   domain.StateMap
	initial    domain.StateID
	goal       []domain.Literal
	catalogue  Catalogue
	preconds   PreconditionIndex
}

// NewProblem builds a Problem. stateMap is the full universe of literals the
// problem reasons over; initial must assign a truth value to every literal
// in stateMap (via domain.EncodeState); goal is the list of literals that
// must hold for a state to satisfy Problem.GoalTest.
func NewProblem(stateMap domain.StateMap, initial domain.FluentState, goal []domain.Literal, catalogue Catalogue) (*Problem, error) {
	initialID, err := domain.EncodeState(initial, stateMap)
	if err != nil {
		return nil, err
	}
	p := &Problem{
		id:        uuid.New(),
		stateMap:  stateMap,
		initial:   initialID,
		goal:      append([]domain.Literal(nil), goal...),
		catalogue: catalogue,
		preconds:  NewPreconditionIndex(catalogue.Actions()),
	}
	log.Info().
		Str("problem_id", p.id.String()).
		Int("literals", len(stateMap)).
		Int("actions", len(catalogue.Actions())).
		Int("goals", len(goal)).
		Msg("strips problem constructed")
	return p, nil
}

// ID returns the problem's build-time identifier, used only to correlate log
// lines across concurrent callers.
func (p *Problem) ID() uuid.UUID { return p.id }

// StateMap returns the problem's literal universe.
func (p *Problem) StateMap() domain.StateMap { return p.stateMap }

// Initial returns the encoded initial state.
func (p *Problem) Initial() domain.StateID { return p.initial }

// Goal returns the literals a state must satisfy to be a goal state.
func (p *Problem) Goal() []domain.Literal { return p.goal }

// Catalogue returns every ground action known to the problem.
func (p *Problem) Catalogue() Catalogue { return p.catalogue }

// PreconditionIndex returns the eager literal -> actions index.
func (p *Problem) PreconditionIndex() PreconditionIndex { return p.preconds }

// Actions returns the subset of the catalogue applicable in state.
func (p *Problem) Actions(state domain.StateID) ([]domain.GroundAction, error) {
	fs, err := domain.DecodeState(state, p.stateMap)
	if err != nil {
		return nil, err
	}
	var applicable []domain.GroundAction
	for _, a := range p.catalogue.Actions() {
		if a.AppliesTo(fs) {
			applicable = append(applicable, a)
		}
	}
	return applicable, nil
}

// Result returns the state obtained by applying action in state. The caller
// must ensure action is applicable in state (e.g. via Actions); Result
// reports a PreconditionViolatedError rather than applying an inapplicable
// action silently.
func (p *Problem) Result(state domain.StateID, action domain.GroundAction) (domain.StateID, error) {
	fs, err := domain.DecodeState(state, p.stateMap)
	if err != nil {
		return "", err
	}
	if !action.AppliesTo(fs) {
		return "", &domainerrors.PreconditionViolatedError{Action: action.Name(), State: state}
	}
	next := action.Apply(fs)
	return domain.EncodeState(next, p.stateMap)
}

// GoalTest reports whether every goal literal holds in state.
func (p *Problem) GoalTest(state domain.StateID) (bool, error) {
	fs, err := domain.DecodeState(state, p.stateMap)
	if err != nil {
		return false, err
	}
	for _, g := range p.goal {
		if !fs.Has(g) {
			return false, nil
		}
	}
	return true, nil
}

// H1 is the trivial admissible heuristic: every non-goal state costs at
// least 1 more step.
func (p *Problem) H1(state domain.StateID) (int, error) {
	done, err := p.GoalTest(state)
	if err != nil {
		return 0, err
	}
	if done {
		return 0, nil
	}
	return 1, nil
}

// HIgnorePreconditions counts the goal literals not yet true in state,
// equivalent to solving the relaxation where every action's preconditions
// are ignored: reaching each missing goal literal costs exactly one action.
func (p *Problem) HIgnorePreconditions(state domain.StateID) (int, error) {
	fs, err := domain.DecodeState(state, p.stateMap)
	if err != nil {
		return 0, err
	}
	missing := 0
	for _, g := range p.goal {
		if !fs.Has(g) {
			missing++
		}
	}
	return missing, nil
}
