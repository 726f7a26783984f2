package aircargo

import (
	"testing"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/gitrdm/graphplan/internal/strips"
	"github.com/stretchr/testify/assert"
)

func testUniverse() strips.Universe {
	return strips.NewUniverse(map[string][]string{
		SetCargos:   {"C1"},
		SetPlanes:   {"P1"},
		SetAirports: {"SFO", "JFK"},
	})
}

func findAction(t *testing.T, actions []domain.GroundAction, name string) domain.GroundAction {
	t.Helper()
	for _, a := range actions {
		if a.Name() == name {
			return a
		}
	}
	t.Fatalf("action %q not found", name)
	return domain.GroundAction{}
}

// TestLoadRemovesCargoAtAirportNotAtPlane guards the corrected Load effect:
// loading removes At(cargo, airport), never At(cargo, plane) -- a cargo is
// never "At" a plane in the first place.
func TestLoadRemovesCargoAtAirportNotAtPlane(t *testing.T) {
	actions := loadSchema{}.Ground(testUniverse())
	load := findAction(t, actions, "Load(C1, P1, SFO)")

	assert.Contains(t, load.EffectRem(), domain.NewLiteral("At", "C1", "SFO"))
	assert.NotContains(t, load.EffectRem(), domain.NewLiteral("At", "C1", "P1"))
	assert.Contains(t, load.EffectAdd(), domain.NewLiteral("In", "C1", "P1"))
}

// TestUnloadRemovesCargoInPlaneNotInAirport guards the corrected Unload
// effect: unloading removes In(cargo, plane), never In(cargo, airport) -- a
// cargo is never "In" an airport, only "At" one.
func TestUnloadRemovesCargoInPlaneNotInAirport(t *testing.T) {
	actions := unloadSchema{}.Ground(testUniverse())
	unload := findAction(t, actions, "Unload(C1, P1, SFO)")

	assert.Contains(t, unload.EffectRem(), domain.NewLiteral("In", "C1", "P1"))
	assert.NotContains(t, unload.EffectRem(), domain.NewLiteral("In", "C1", "SFO"))
	assert.Contains(t, unload.EffectAdd(), domain.NewLiteral("At", "C1", "SFO"))
}

func TestFlySchemaExcludesSameAirport(t *testing.T) {
	actions := flySchema{}.Ground(testUniverse())
	for _, a := range actions {
		assert.NotEqual(t, a.PrecondPos()[0], a.EffectAdd()[0])
	}
	// Two airports, one plane: exactly 2 directed fly actions (SFO->JFK, JFK->SFO).
	assert.Len(t, actions, 2)
}
