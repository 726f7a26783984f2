package graphplan_test

import (
	"testing"

	"github.com/gitrdm/graphplan"
	"github.com/gitrdm/graphplan/internal/aircargo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHPGLevelSumAdmissibleAgainstIgnorePreconditions(t *testing.T) {
	problem, err := aircargo.BuildProblem(aircargo.Scenario1())
	require.NoError(t, err)

	hIgnore, err := problem.HIgnorePreconditions(problem.Initial())
	require.NoError(t, err)

	hLevelSum, err := graphplan.HPGLevelSum(problem, problem.Initial())
	require.NoError(t, err)

	// Level-sum dominates ignore-preconditions: it accounts for the steps
	// needed to satisfy preconditions, so it is never smaller.
	assert.GreaterOrEqual(t, hLevelSum, hIgnore)
}

func TestBuildPlanningGraphExposesLevelCount(t *testing.T) {
	problem, err := aircargo.BuildProblem(aircargo.Scenario1())
	require.NoError(t, err)

	g, err := graphplan.BuildPlanningGraph(problem, problem.Initial(), true, false)
	require.NoError(t, err)
	assert.Greater(t, g.Levels(), 0)
}
