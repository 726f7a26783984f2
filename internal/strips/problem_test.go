package strips

import (
	"testing"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tinyProblem(t *testing.T) *Problem {
	t.Helper()
	cargoAtSFO := domain.NewLiteral("At", "C1", "SFO")
	cargoAtJFK := domain.NewLiteral("At", "C1", "JFK")
	planeAtSFO := domain.NewLiteral("At", "P1", "SFO")
	planeAtJFK := domain.NewLiteral("At", "P1", "JFK")
	cargoInPlane := domain.NewLiteral("In", "C1", "P1")

	sm := domain.NewStateMap([]domain.Literal{cargoAtSFO, cargoAtJFK, planeAtSFO, planeAtJFK, cargoInPlane})
	initial := domain.NewFluentState(
		[]domain.Literal{cargoAtSFO, planeAtSFO},
		[]domain.Literal{cargoAtJFK, planeAtJFK, cargoInPlane},
	)

	reg := NewSchemaRegistry()
	require.NoError(t, reg.Register(stubSchema{name: "Fly", ground: func(u Universe) []domain.GroundAction {
		return []domain.GroundAction{
			domain.NewGroundAction("Fly(P1,SFO,JFK)",
				[]domain.Literal{planeAtSFO}, nil,
				[]domain.Literal{planeAtJFK}, []domain.Literal{planeAtSFO},
				false),
		}
	}}))

	cat := NewCatalogue(reg, NewUniverse(nil))
	p, err := NewProblem(sm, initial, []domain.Literal{planeAtJFK}, cat)
	require.NoError(t, err)
	return p
}

func TestProblemActionsFiltersByApplicability(t *testing.T) {
	p := tinyProblem(t)
	actions, err := p.Actions(p.Initial())
	assert.NoError(t, err)
	assert.Len(t, actions, 1)
	assert.Equal(t, "Fly(P1,SFO,JFK)", actions[0].Name())
}

func TestProblemResultAndGoalTest(t *testing.T) {
	p := tinyProblem(t)
	actions, err := p.Actions(p.Initial())
	require.NoError(t, err)

	next, err := p.Result(p.Initial(), actions[0])
	assert.NoError(t, err)

	done, err := p.GoalTest(next)
	assert.NoError(t, err)
	assert.True(t, done)

	done, err = p.GoalTest(p.Initial())
	assert.NoError(t, err)
	assert.False(t, done)
}

func TestProblemResultRejectsInapplicableAction(t *testing.T) {
	p := tinyProblem(t)
	bogus := domain.NewGroundAction("Bogus", []domain.Literal{domain.NewLiteral("Nope")}, nil, nil, nil, false)
	_, err := p.Result(p.Initial(), bogus)
	assert.Error(t, err)
}

func TestHeuristicsAgreeOnGoalState(t *testing.T) {
	p := tinyProblem(t)

	h1, err := p.H1(p.Initial())
	assert.NoError(t, err)
	assert.Equal(t, 1, h1)

	hIgnore, err := p.HIgnorePreconditions(p.Initial())
	assert.NoError(t, err)
	assert.Equal(t, 1, hIgnore)

	actions, err := p.Actions(p.Initial())
	require.NoError(t, err)
	goalState, err := p.Result(p.Initial(), actions[0])
	require.NoError(t, err)

	hIgnoreGoal, err := p.HIgnorePreconditions(goalState)
	assert.NoError(t, err)
	assert.Equal(t, 0, hIgnoreGoal)

	h1Goal, err := p.H1(goalState)
	assert.NoError(t, err)
	assert.Equal(t, 1, h1Goal)
}

func TestPreconditionIndexReturnsActionsByLiteralAndPolarity(t *testing.T) {
	p := tinyProblem(t)
	idx := p.PreconditionIndex()

	planeAtSFO := domain.NewLiteral("At", "P1", "SFO")
	matches := idx.ActionsRequiring(planeAtSFO, true)
	assert.Len(t, matches, 1)

	noMatches := idx.ActionsRequiring(planeAtSFO, false)
	assert.Len(t, noMatches, 0)
}
