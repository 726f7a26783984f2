// Package graphplan is the public facade over the planning engine: a
// strips.Problem (ground actions, state encoding, goal test, the cheap
// heuristics) and a planning-graph-backed level-sum heuristic built on top
// of it. Most callers only need the types and functions re-exported here;
// internal/strips and internal/graphplan hold the implementation.
package graphplan

import (
	"github.com/gitrdm/graphplan/internal/domain"
	pgraph "github.com/gitrdm/graphplan/internal/graphplan"
	"github.com/gitrdm/graphplan/internal/strips"
)

// Literal is a ground predicate applied to ground arguments.
type Literal = domain.Literal

// StateID is the bitset encoding of a FluentState against a StateMap.
type StateID = domain.StateID

// FluentState is a complete positive/negative literal assignment.
type FluentState = domain.FluentState

// StateMap is the fixed universe of literals a Problem reasons over.
type StateMap = domain.StateMap

// GroundAction is a fully instantiated operator.
type GroundAction = domain.GroundAction

// ActionSchema grounds into GroundActions against a Universe.
type ActionSchema = strips.ActionSchema

// Universe is the set of typed objects a schema grounds its variables over.
type Universe = strips.Universe

// SchemaRegistry is a thread-safe collection of ActionSchema values.
type SchemaRegistry = strips.SchemaRegistry

// Problem bundles a state map, initial state, goal, and grounded catalogue.
type Problem = strips.Problem

// PlanningGraph is a leveled Graphplan planning graph built from one state.
type PlanningGraph = pgraph.PlanningGraph

// NewLiteral builds a Literal from a predicate name and its arguments.
func NewLiteral(predicate string, args ...string) Literal {
	return domain.NewLiteral(predicate, args...)
}

// NewUniverse builds a Universe from named object sets.
func NewUniverse(sets map[string][]string) Universe {
	return strips.NewUniverse(sets)
}

// NewSchemaRegistry returns an empty schema registry.
func NewSchemaRegistry() *SchemaRegistry {
	return strips.NewSchemaRegistry()
}

// NewProblem grounds every schema in reg against u and returns a
// ready-to-use Problem over stateMap, with initial encoded against it.
func NewProblem(reg *SchemaRegistry, u Universe, stateMap StateMap, initial FluentState, goal []Literal) (*Problem, error) {
	catalogue := strips.NewCatalogue(reg, u)
	return strips.NewProblem(stateMap, initial, goal, catalogue)
}

// BuildPlanningGraph constructs and builds a PlanningGraph rooted at state.
// serial makes every pair of non-persistence actions in a level mutex;
// shortCircuit skips mutex computation and stops as soon as the goal
// appears. The level-sum heuristic reads only literal presence per level,
// not mutexes.
func BuildPlanningGraph(problem *Problem, state StateID, serial, shortCircuit bool) (*PlanningGraph, error) {
	g := pgraph.New(problem, state, serial, shortCircuit)
	if err := g.Build(state); err != nil {
		return nil, err
	}
	return g, nil
}

// HPGLevelSum builds a serial, short-circuited planning graph rooted at
// state and returns its level-sum heuristic value.
func HPGLevelSum(problem *Problem, state StateID) (int, error) {
	g, err := BuildPlanningGraph(problem, state, true, true)
	if err != nil {
		return 0, err
	}
	return g.HLevelSum(), nil
}
