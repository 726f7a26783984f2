package domain

import (
	"sort"

	domainerrors "github.com/gitrdm/graphplan/internal/domain/errors"
)

// FluentState is a complete assignment of truth values to every literal a
// StateMap knows about: Pos holds the literals that are true, Neg holds the
// literals that are explicitly false. A well-formed FluentState partitions
// its StateMap exactly — every literal in the map appears in exactly one of
// the two slices.
type FluentState struct {
	Pos []Literal
	Neg []Literal
}

// NewFluentState builds a FluentState from explicit positive and negative
// literal slices, copying both so the caller's slices can be reused.
func NewFluentState(pos, neg []Literal) FluentState {
	p := make([]Literal, len(pos))
	copy(p, pos)
	n := make([]Literal, len(neg))
	copy(n, neg)
	return FluentState{Pos: p, Neg: n}
}

// Has reports whether lit is true in this state.
func (fs FluentState) Has(lit Literal) bool {
	for _, p := range fs.Pos {
		if p.Equal(lit) {
			return true
		}
	}
	return false
}

// StateMap is the fixed, ordered universe of ground literals a problem
// reasons over. Index i of a StateID's bitset corresponds to StateMap[i].
// A StateMap never changes after a Problem is constructed.
type StateMap []Literal

// IndexOf returns the position of lit in the map and true, or -1 and false
// if lit is not part of this universe.
func (sm StateMap) IndexOf(lit Literal) (int, bool) {
	for i, l := range sm {
		if l.Equal(lit) {
			return i, true
		}
	}
	return -1, false
}

// StateID is the bitset encoding of a FluentState against a StateMap: bit i
// is 1 when StateMap[i] holds in the state, 0 when it does not. It is the
// dense, comparable, hashable handle the search layer and planning graph
// pass around instead of a FluentState.
type StateID string

// EncodeState packs fs into a StateID positioned against sm. Every literal in
// sm must appear in exactly one of fs.Pos or fs.Neg; a literal missing from
// both, or present in both, is a StateInvariantError.
func EncodeState(fs FluentState, sm StateMap) (StateID, error) {
	bits := make([]byte, len(sm))
	for i, lit := range sm {
		pos := fs.Has(lit)
		neg := containsLiteral(fs.Neg, lit)
		if pos == neg {
			reason := "literal missing from state"
			if pos {
				reason = "literal asserted both true and false"
			}
			return "", &domainerrors.StateInvariantError{
				Predicate: lit.Predicate,
				Args:      lit.Args,
				Reason:    reason,
			}
		}
		if pos {
			bits[i] = '1'
		} else {
			bits[i] = '0'
		}
	}
	return StateID(bits), nil
}

// DecodeState unpacks id into a FluentState positioned against sm. id must
// have exactly len(sm) bits, and each byte must be '0' or '1'; any other
// shape is a StateInvariantError.
func DecodeState(id StateID, sm StateMap) (FluentState, error) {
	if len(id) != len(sm) {
		return FluentState{}, &domainerrors.StateInvariantError{
			Reason: "state id length does not match state map length",
		}
	}
	fs := FluentState{
		Pos: make([]Literal, 0, len(sm)),
		Neg: make([]Literal, 0, len(sm)),
	}
	for i, lit := range sm {
		switch id[i] {
		case '1':
			fs.Pos = append(fs.Pos, lit)
		case '0':
			fs.Neg = append(fs.Neg, lit)
		default:
			return FluentState{}, &domainerrors.StateInvariantError{
				Predicate: lit.Predicate,
				Args:      lit.Args,
				Reason:    "state id byte is neither '0' nor '1'",
			}
		}
	}
	return fs, nil
}

// String returns the id's raw '0'/'1' string, for logging.
func (id StateID) String() string {
	return string(id)
}

func containsLiteral(lits []Literal, lit Literal) bool {
	for _, l := range lits {
		if l.Equal(lit) {
			return true
		}
	}
	return false
}

// sortedKeys is a small helper used by callers that build a StateMap from a
// map[string]Literal and need deterministic ordering.
func sortedKeys(m map[string]Literal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewStateMap builds a StateMap from a set of literals, deduplicating by Key
// and ordering deterministically so two calls with the same input literals
// (in any order) produce the same StateMap.
func NewStateMap(lits []Literal) StateMap {
	byKey := make(map[string]Literal, len(lits))
	for _, l := range lits {
		byKey[l.Key()] = l
	}
	keys := sortedKeys(byKey)
	sm := make(StateMap, len(keys))
	for i, k := range keys {
		sm[i] = byKey[k]
	}
	return sm
}
