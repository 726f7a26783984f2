package graphplan_test

import (
	"math"
	"testing"

	"github.com/gitrdm/graphplan/internal/aircargo"
	"github.com/gitrdm/graphplan/internal/domain"
	pgraph "github.com/gitrdm/graphplan/internal/graphplan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAirCargoP1HIgnorePreconditionsIsTwo(t *testing.T) {
	scenario := aircargo.Scenario1()
	problem, err := aircargo.BuildProblem(scenario)
	require.NoError(t, err)

	h, err := problem.HIgnorePreconditions(problem.Initial())
	require.NoError(t, err)
	assert.Equal(t, 2, h)
}

func TestPlanningGraphLevelsOffAndFindsGoalLevels(t *testing.T) {
	scenario := aircargo.Scenario1()
	problem, err := aircargo.BuildProblem(scenario)
	require.NoError(t, err)

	g := pgraph.New(problem, problem.Initial(), true, false)
	require.NoError(t, g.Build(problem.Initial()))
	assert.Greater(t, g.Levels(), 1)

	sum := g.HLevelSum()
	assert.Greater(t, sum, 0)
	assert.Less(t, sum, math.MaxInt)
}

func TestShortCircuitAndFullGraphAgreeOnLevelSum(t *testing.T) {
	scenario := aircargo.Scenario1()
	problem, err := aircargo.BuildProblem(scenario)
	require.NoError(t, err)

	full := pgraph.New(problem, problem.Initial(), true, false)
	require.NoError(t, full.Build(problem.Initial()))

	short := pgraph.New(problem, problem.Initial(), true, true)
	require.NoError(t, short.Build(problem.Initial()))

	assert.Equal(t, full.HLevelSum(), short.HLevelSum())
}

func TestBuildTwiceIsGraphMisuse(t *testing.T) {
	scenario := aircargo.Scenario1()
	problem, err := aircargo.BuildProblem(scenario)
	require.NoError(t, err)

	g := pgraph.New(problem, problem.Initial(), true, true)
	require.NoError(t, g.Build(problem.Initial()))
	err = g.Build(problem.Initial())
	assert.Error(t, err)
}

func TestUnreachableGoalLiteralSaturatesToMaxInt(t *testing.T) {
	unreachable := domain.NewLiteral("At", "C1", "NOWHERE")
	scenario := aircargo.Scenario1()
	scenario.Goal = append(scenario.Goal, unreachable)
	problem, err := aircargo.BuildProblem(scenario)
	require.NoError(t, err)

	g := pgraph.New(problem, problem.Initial(), true, false)
	require.NoError(t, g.Build(problem.Initial()))
	assert.Equal(t, math.MaxInt, g.HLevelSum())
}
