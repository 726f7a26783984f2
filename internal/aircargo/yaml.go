package aircargo

import (
	"os"
	"strings"

	"github.com/gitrdm/graphplan/internal/domain"
	domainerrors "github.com/gitrdm/graphplan/internal/domain/errors"

	"gopkg.in/yaml.v3"
)

// yamlLiteral is a single "Predicate(arg1, arg2)" entry as it appears in a
// scenario file.
type yamlLiteral string

func (y yamlLiteral) toLiteral() domain.Literal {
	s := string(y)
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return domain.NewLiteral(s)
	}
	predicate := s[:open]
	argsPart := s[open+1 : len(s)-1]
	var args []string
	for _, a := range strings.Split(argsPart, ",") {
		args = append(args, strings.TrimSpace(a))
	}
	return domain.NewLiteral(predicate, args...)
}

// yamlScenario mirrors the on-disk shape of a scenario file.
type yamlScenario struct {
	Cargos   []string      `yaml:"cargos"`
	Planes   []string      `yaml:"planes"`
	Airports []string      `yaml:"airports"`
	InitPos  []yamlLiteral `yaml:"init_pos"`
	InitNeg  []yamlLiteral `yaml:"init_neg"`
	Goal     []yamlLiteral `yaml:"goal"`
}

// LoadScenarioFile reads a YAML scenario description from path and returns
// the Scenario it describes. This is the data-driven counterpart to the
// hardcoded Scenario1/Scenario2/Scenario3 functions: new problem instances
// do not require a new Go function, only a new file.
//
// Example file:
//
//	cargos: [C1, C2]
//	planes: [P1, P2]
//	airports: [JFK, SFO]
//	init_pos: ["At(C1, SFO)", "At(P1, SFO)"]
//	init_neg: ["At(C1, JFK)", "In(C1, P1)"]
//	goal: ["At(C1, JFK)"]
func LoadScenarioFile(path string) (*Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &domainerrors.ConfigurationError{Field: "scenario_file", Reason: "could not read file", Cause: err}
	}
	var ys yamlScenario
	if err := yaml.Unmarshal(raw, &ys); err != nil {
		return nil, &domainerrors.ConfigurationError{Field: "scenario_file", Reason: "could not parse yaml", Cause: err}
	}

	toLiterals := func(in []yamlLiteral) []domain.Literal {
		out := make([]domain.Literal, len(in))
		for i, l := range in {
			out[i] = l.toLiteral()
		}
		return out
	}

	s := &Scenario{
		Cargos:   ys.Cargos,
		Planes:   ys.Planes,
		Airports: ys.Airports,
		InitPos:  toLiterals(ys.InitPos),
		InitNeg:  toLiterals(ys.InitNeg),
		Goal:     toLiterals(ys.Goal),
	}
	if len(s.Cargos) == 0 || len(s.Planes) == 0 || len(s.Airports) == 0 {
		return nil, &domainerrors.ConfigurationError{Field: "scenario_file", Reason: "cargos, planes, and airports must each be non-empty"}
	}
	return s, nil
}
