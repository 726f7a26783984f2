package aircargo

import (
	"sort"

	"github.com/gitrdm/graphplan/internal/domain"
	"github.com/gitrdm/graphplan/internal/strips"
)

// Scenario describes one Air Cargo problem instance: its object sets, the
// complete positive/negative initial assignment, and its goal literals.
// BuildProblem turns a Scenario into a ready-to-use strips.Problem.
type Scenario struct {
	Cargos   []string
	Planes   []string
	Airports []string
	InitPos  []domain.Literal
	InitNeg  []domain.Literal
	Goal     []domain.Literal
}

// BuildProblem grounds the Air Cargo schemas over s's object sets and
// assembles a strips.Problem from its initial state and goal.
func BuildProblem(s Scenario) (*strips.Problem, error) {
	universe := strips.NewUniverse(map[string][]string{
		SetCargos:   s.Cargos,
		SetPlanes:   s.Planes,
		SetAirports: s.Airports,
	})
	catalogue := strips.NewCatalogue(NewSchemaRegistry(), universe)

	stateMap := domain.NewStateMap(append(append([]domain.Literal(nil), s.InitPos...), s.InitNeg...))
	initial := domain.NewFluentState(s.InitPos, s.InitNeg)

	return strips.NewProblem(stateMap, initial, s.Goal, catalogue)
}

// Scenario1 is the two-cargo, two-plane, two-airport instance: C1 and C2
// must swap airports by plane.
func Scenario1() Scenario {
	cargos := []string{"C1", "C2"}
	planes := []string{"P1", "P2"}
	airports := []string{"JFK", "SFO"}

	pos := []domain.Literal{
		domain.NewLiteral("At", "C1", "SFO"),
		domain.NewLiteral("At", "C2", "JFK"),
		domain.NewLiteral("At", "P1", "SFO"),
		domain.NewLiteral("At", "P2", "JFK"),
	}
	neg := []domain.Literal{
		domain.NewLiteral("At", "C2", "SFO"),
		domain.NewLiteral("In", "C2", "P1"),
		domain.NewLiteral("In", "C2", "P2"),
		domain.NewLiteral("At", "C1", "JFK"),
		domain.NewLiteral("In", "C1", "P1"),
		domain.NewLiteral("In", "C1", "P2"),
		domain.NewLiteral("At", "P1", "JFK"),
		domain.NewLiteral("At", "P2", "SFO"),
	}
	goal := []domain.Literal{
		domain.NewLiteral("At", "C1", "JFK"),
		domain.NewLiteral("At", "C2", "SFO"),
	}
	return Scenario{Cargos: cargos, Planes: planes, Airports: airports, InitPos: pos, InitNeg: neg, Goal: goal}
}

// Scenario2 is the three-cargo, three-plane, three-airport instance. Unlike
// the source this is derived from, the plane/cargo home-airport assignments
// are walked as key/value pairs, not iterated as if they were a flat
// sequence of keys.
func Scenario2() Scenario {
	cargos := []string{"C1", "C2", "C3"}
	planes := []string{"P1", "P2", "P3"}
	airports := []string{"JFK", "SFO", "ATL"}

	planeHome := map[string]string{"P1": "SFO", "P2": "JFK", "P3": "ATL"}
	cargoHome := map[string]string{"C1": "SFO", "C2": "JFK", "C3": "ATL"}

	var pos, neg []domain.Literal
	for _, plane := range sortedKeys(planeHome) {
		home := planeHome[plane]
		for _, airport := range airports {
			if airport == home {
				pos = append(pos, domain.NewLiteral("At", plane, home))
			} else {
				neg = append(neg, domain.NewLiteral("At", plane, airport))
			}
		}
	}
	for _, cargo := range sortedKeys(cargoHome) {
		home := cargoHome[cargo]
		for _, airport := range airports {
			if airport == home {
				pos = append(pos, domain.NewLiteral("At", cargo, home))
			} else {
				neg = append(neg, domain.NewLiteral("At", cargo, airport))
			}
		}
		for _, plane := range planes {
			neg = append(neg, domain.NewLiteral("In", cargo, plane))
		}
	}

	goal := []domain.Literal{
		domain.NewLiteral("At", "C1", "JFK"),
		domain.NewLiteral("At", "C2", "SFO"),
		domain.NewLiteral("At", "C3", "SFO"),
	}
	return Scenario{Cargos: cargos, Planes: planes, Airports: airports, InitPos: pos, InitNeg: neg, Goal: goal}
}

// Scenario3 is the four-cargo, three-plane, four-airport instance the source
// this is derived from left as an unimplemented stub. Every cargo starts at
// a distinct airport and must end up at a different one, with one more
// airport than plane so at least one airport starts empty of aircraft.
func Scenario3() Scenario {
	cargos := []string{"C1", "C2", "C3", "C4"}
	planes := []string{"P1", "P2", "P3"}
	airports := []string{"JFK", "SFO", "ATL", "ORD"}

	cargoHome := map[string]string{"C1": "SFO", "C2": "JFK", "C3": "ATL", "C4": "ORD"}
	planeHome := map[string]string{"P1": "SFO", "P2": "JFK", "P3": "ATL"}

	var pos, neg []domain.Literal
	for _, plane := range sortedKeys(planeHome) {
		home := planeHome[plane]
		for _, airport := range airports {
			if airport == home {
				pos = append(pos, domain.NewLiteral("At", plane, home))
			} else {
				neg = append(neg, domain.NewLiteral("At", plane, airport))
			}
		}
	}
	for _, cargo := range sortedKeys(cargoHome) {
		home := cargoHome[cargo]
		for _, airport := range airports {
			if airport == home {
				pos = append(pos, domain.NewLiteral("At", cargo, home))
			} else {
				neg = append(neg, domain.NewLiteral("At", cargo, airport))
			}
		}
		for _, plane := range planes {
			neg = append(neg, domain.NewLiteral("In", cargo, plane))
		}
	}

	goal := []domain.Literal{
		domain.NewLiteral("At", "C1", "JFK"),
		domain.NewLiteral("At", "C2", "ATL"),
		domain.NewLiteral("At", "C3", "ORD"),
		domain.NewLiteral("At", "C4", "SFO"),
	}
	return Scenario{Cargos: cargos, Planes: planes, Airports: airports, InitPos: pos, InitNeg: neg, Goal: goal}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
