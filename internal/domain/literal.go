// Package domain holds the core value types of the planning engine: ground
// literals, complete fluent states, their bitset encoding, and ground
// actions. Every type here is an immutable value object — none of them are
// mutated in place after construction, so they are safe to share across a
// problem and however many planning graphs are built from it.
package domain

import "strings"

// Literal is a single ground predicate applied to zero or more ground
// arguments, e.g. At(C1, SFO). Two literals are equal when their Predicate
// and Args are equal; Literal carries no polarity, it names the fact, not
// its truth value.
type Literal struct {
	Predicate string
	Args      []string
}

// NewLiteral builds a Literal from a predicate name and its arguments.
func NewLiteral(predicate string, args ...string) Literal {
	a := make([]string, len(args))
	copy(a, args)
	return Literal{Predicate: predicate, Args: a}
}

// Key returns a canonical string form of the literal, suitable as a map key
// or for deduplication. Two literals with the same Predicate and Args always
// produce the same Key, regardless of how their Args slice was built.
func (l Literal) Key() string {
	var b strings.Builder
	b.WriteString(l.Predicate)
	b.WriteByte('(')
	for i, a := range l.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(a)
	}
	b.WriteByte(')')
	return b.String()
}

// String implements fmt.Stringer.
func (l Literal) String() string {
	return l.Key()
}

// Equal reports whether l and other name the same ground predicate.
func (l Literal) Equal(other Literal) bool {
	return l.Key() == other.Key()
}
