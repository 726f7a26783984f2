package aircargo

import (
	"testing"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario1BuildsAndEncodesInitialState(t *testing.T) {
	problem, err := BuildProblem(Scenario1())
	require.NoError(t, err)

	fs, err := domain.DecodeState(problem.Initial(), problem.StateMap())
	require.NoError(t, err)
	assert.True(t, fs.Has(domain.NewLiteral("At", "C1", "SFO")))
	assert.False(t, fs.Has(domain.NewLiteral("At", "C1", "JFK")))
}

// TestScenario2HomeAssignmentsAreWalkedAsPairs guards against the
// iterate-over-map-as-a-flat-sequence mistake: every plane and cargo must
// end up positively "At" its assigned home airport and negatively at every
// other one, never some unrelated single-character literal produced by
// misreading a two-character key as two separate loop variables.
func TestScenario2HomeAssignmentsAreWalkedAsPairs(t *testing.T) {
	s := Scenario2()
	problem, err := BuildProblem(s)
	require.NoError(t, err)

	fs, err := domain.DecodeState(problem.Initial(), problem.StateMap())
	require.NoError(t, err)

	assert.True(t, fs.Has(domain.NewLiteral("At", "P1", "SFO")))
	assert.True(t, fs.Has(domain.NewLiteral("At", "P2", "JFK")))
	assert.True(t, fs.Has(domain.NewLiteral("At", "P3", "ATL")))
	assert.True(t, fs.Has(domain.NewLiteral("At", "C1", "SFO")))
	assert.True(t, fs.Has(domain.NewLiteral("At", "C2", "JFK")))
	assert.True(t, fs.Has(domain.NewLiteral("At", "C3", "ATL")))

	assert.False(t, fs.Has(domain.NewLiteral("At", "P1", "JFK")))
	assert.False(t, fs.Has(domain.NewLiteral("At", "P1", "ATL")))
}

func TestScenario3IsImplementedWithEveryGoalUnmet(t *testing.T) {
	s := Scenario3()
	require.Len(t, s.Cargos, 4)
	require.Len(t, s.Goal, 4)

	problem, err := BuildProblem(s)
	require.NoError(t, err)

	h, err := problem.HIgnorePreconditions(problem.Initial())
	require.NoError(t, err)
	assert.Equal(t, 4, h)
}
