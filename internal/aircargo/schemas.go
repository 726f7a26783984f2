// Package aircargo supplies the Air Cargo domain: the Load/Unload/Fly action
// schemas, three scenario generators (two ports of the classic fixed
// scenarios, one newly written to fill the gap the original left
// unimplemented), and a YAML scenario loader for data-driven problems.
package aircargo

import (
	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/gitrdm/graphplan/internal/strips"
)

// universe set names expected under Universe.Sets.
const (
	SetCargos   = "cargo"
	SetPlanes   = "plane"
	SetAirports = "airport"
)

// loadSchema grounds Load(c, p, a): a cargo at the same airport as a plane
// can be loaded onto it.
type loadSchema struct{}

func (loadSchema) Name() string { return "Load" }

func (loadSchema) Ground(u strips.Universe) []domain.GroundAction {
	var actions []domain.GroundAction
	for _, cargo := range u.Sets[SetCargos] {
		for _, plane := range u.Sets[SetPlanes] {
			for _, airport := range u.Sets[SetAirports] {
				name := "Load(" + cargo + ", " + plane + ", " + airport + ")"
				precondPos := []domain.Literal{
					domain.NewLiteral("At", cargo, airport),
					domain.NewLiteral("At", plane, airport),
				}
				effectAdd := []domain.Literal{domain.NewLiteral("In", cargo, plane)}
				// Fixed: loading removes the cargo's presence at the
				// airport, not at the plane (the cargo was never "At" the
				// plane to begin with).
				effectRem := []domain.Literal{domain.NewLiteral("At", cargo, airport)}
				actions = append(actions, domain.NewGroundAction(name, precondPos, nil, effectAdd, effectRem, false))
			}
		}
	}
	return actions
}

// unloadSchema grounds Unload(c, p, a): a cargo in a plane that is at an
// airport can be unloaded there.
type unloadSchema struct{}

func (unloadSchema) Name() string { return "Unload" }

func (unloadSchema) Ground(u strips.Universe) []domain.GroundAction {
	var actions []domain.GroundAction
	for _, cargo := range u.Sets[SetCargos] {
		for _, plane := range u.Sets[SetPlanes] {
			for _, airport := range u.Sets[SetAirports] {
				name := "Unload(" + cargo + ", " + plane + ", " + airport + ")"
				precondPos := []domain.Literal{
					domain.NewLiteral("In", cargo, plane),
					domain.NewLiteral("At", plane, airport),
				}
				effectAdd := []domain.Literal{domain.NewLiteral("At", cargo, airport)}
				// Fixed: unloading removes the cargo's presence in the
				// plane, not "In" the airport (a cargo is never "In" an
				// airport, only "At" one).
				effectRem := []domain.Literal{domain.NewLiteral("In", cargo, plane)}
				actions = append(actions, domain.NewGroundAction(name, precondPos, nil, effectAdd, effectRem, false))
			}
		}
	}
	return actions
}

// flySchema grounds Fly(p, from, to): a plane at one airport can fly
// directly to any other airport.
type flySchema struct{}

func (flySchema) Name() string { return "Fly" }

func (flySchema) Ground(u strips.Universe) []domain.GroundAction {
	var actions []domain.GroundAction
	for _, from := range u.Sets[SetAirports] {
		for _, to := range u.Sets[SetAirports] {
			if from == to {
				continue
			}
			for _, plane := range u.Sets[SetPlanes] {
				name := "Fly(" + plane + ", " + from + ", " + to + ")"
				precondPos := []domain.Literal{domain.NewLiteral("At", plane, from)}
				effectAdd := []domain.Literal{domain.NewLiteral("At", plane, to)}
				effectRem := []domain.Literal{domain.NewLiteral("At", plane, from)}
				actions = append(actions, domain.NewGroundAction(name, precondPos, nil, effectAdd, effectRem, false))
			}
		}
	}
	return actions
}

// NewSchemaRegistry returns a registry pre-populated with Load, Unload, and
// Fly — the complete Air Cargo action vocabulary.
func NewSchemaRegistry() *strips.SchemaRegistry {
	reg := strips.NewSchemaRegistry()
	_ = reg.Register(loadSchema{})
	_ = reg.Register(unloadSchema{})
	_ = reg.Register(flySchema{})
	return reg
}
