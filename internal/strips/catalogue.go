package strips

import (
	"sort"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/rs/zerolog/log"
)

// Catalogue grounds every schema in a SchemaRegistry against a Universe
// exactly once and caches the resulting ground action list. It is built by
// NewCatalogue, handed to NewProblem, and never mutated afterward.
type Catalogue struct {
	actions []domain.GroundAction
}

// NewCatalogue grounds every schema registered in reg against u, in a
// deterministic order (schemas sorted by name, so catalogue order is stable
// across runs), and caches the result.
func NewCatalogue(reg *SchemaRegistry, u Universe) Catalogue {
	schemas := reg.List()
	sort.Slice(schemas, func(i, j int) bool { return schemas[i].Name() < schemas[j].Name() })

	var actions []domain.GroundAction
	for _, s := range schemas {
		grounded := s.Ground(u)
		actions = append(actions, grounded...)
		log.Debug().Str("schema", s.Name()).Int("count", len(grounded)).Msg("grounded action schema")
	}
	return Catalogue{actions: actions}
}

// Actions returns every ground action in the catalogue.
func (c Catalogue) Actions() []domain.GroundAction {
	return c.actions
}
