// Package errors defines the closed set of typed errors the planning core can
// raise. Each kind signals a programmer error (a violated invariant or a
// misuse of the API) rather than an expected runtime condition; none of them
// are recovered internally, they propagate to the caller.
package errors

import "fmt"

// StateInvariantError reports that a literal could not be round-tripped
// through a state's bitset encoding, or that a decoded state disagreed with
// the state map it was decoded against.
type StateInvariantError struct {
	Predicate string
	Args      []string
	Reason    string
}

func (e *StateInvariantError) Error() string {
	return fmt.Sprintf("state invariant violated for %s%v: %s", e.Predicate, e.Args, e.Reason)
}

// PreconditionViolatedError reports that Result was called with an action
// that is not applicable in the given state.
type PreconditionViolatedError struct {
	Action string
	State  fmt.Stringer
}

func (e *PreconditionViolatedError) Error() string {
	return fmt.Sprintf("action %q is not applicable in state %s", e.Action, e.State)
}

// GraphMisuseError reports an invalid operation against a PlanningGraph, such
// as building a graph that has already been built, or extracting a level
// that has not been built yet.
type GraphMisuseError struct {
	Reason string
}

func (e *GraphMisuseError) Error() string {
	return fmt.Sprintf("planning graph misuse: %s", e.Reason)
}

// TypeMismatchError reports that two planning-graph nodes of incompatible
// kinds were compared or linked, such as testing mutex between an S-node and
// an A-node.
type TypeMismatchError struct {
	Kind1 string
	Kind2 string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("type mismatch: cannot relate a %s node to a %s node", e.Kind1, e.Kind2)
}

// ConfigurationError reports an unreadable or invalid scenario file. The
// environment-variable loader in internal/config does not return it; it
// falls back to defaults instead. It is not one of the
// four core error kinds; it exists only for the ambient config/scenario
// loading layer.
type ConfigurationError struct {
	Field  string
	Reason string
	Cause  error
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error for %s: %s: %v", e.Field, e.Reason, e.Cause)
	}
	return fmt.Sprintf("configuration error for %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}
