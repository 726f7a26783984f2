// Package strips implements the domain-agnostic STRIPS problem machinery:
// action schemas, a grounding catalogue, the problem definition (actions,
// result, goal test, the two cheap heuristics), and the precondition index.
// Nothing in this package knows about Air Cargo; internal/aircargo supplies
// the schemas that plug into it.
package strips

import "github.com/gitrdm/graphplan/internal/domain"

// Universe is the set of typed objects a schema grounds its free variables
// over. A domain package builds one Universe per problem instance.
type Universe struct {
	Sets map[string][]string
}

// NewUniverse builds a Universe from named object sets, e.g.
// {"cargo": {"C1","C2"}, "plane": {"P1"}, "airport": {"SFO","JFK"}}.
func NewUniverse(sets map[string][]string) Universe {
	out := make(map[string][]string, len(sets))
	for k, v := range sets {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return Universe{Sets: out}
}

// ActionSchema grounds into zero or more domain.GroundAction values against a
// Universe. A schema is stateless; Ground is expected to be deterministic and
// is called exactly once per Problem construction.
type ActionSchema interface {
	// Name identifies the schema, e.g. "Load", "Fly".
	Name() string
	// Ground produces every concrete action instance of this schema over u.
	Ground(u Universe) []domain.GroundAction
}
