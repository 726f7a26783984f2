package domain

// GroundAction is a fully instantiated operator: a name plus its positive and
// negative preconditions and its add/delete effects, all expressed as ground
// literals. GroundAction is produced by grounding an ActionSchema against a
// problem's universe of objects; it never carries free variables.
type GroundAction struct {
	name         string
	precondPos   []Literal
	precondNeg   []Literal
	effectAdd    []Literal
	effectRem    []Literal
	isPersistence bool
}

// NewGroundAction builds a GroundAction. isPersistence marks a no-op/persistence
// action synthesized by the planning graph builder rather than grounded from
// a domain schema.
func NewGroundAction(name string, precondPos, precondNeg, effectAdd, effectRem []Literal, isPersistence bool) GroundAction {
	return GroundAction{
		name:          name,
		precondPos:    append([]Literal(nil), precondPos...),
		precondNeg:    append([]Literal(nil), precondNeg...),
		effectAdd:     append([]Literal(nil), effectAdd...),
		effectRem:     append([]Literal(nil), effectRem...),
		isPersistence: isPersistence,
	}
}

// Name returns the action's display name, e.g. "Load(C1, P1, SFO)".
func (a GroundAction) Name() string { return a.name }

// PrecondPos returns the literals that must hold for the action to apply.
func (a GroundAction) PrecondPos() []Literal { return a.precondPos }

// PrecondNeg returns the literals that must not hold for the action to apply.
func (a GroundAction) PrecondNeg() []Literal { return a.precondNeg }

// EffectAdd returns the literals the action makes true.
func (a GroundAction) EffectAdd() []Literal { return a.effectAdd }

// EffectRem returns the literals the action makes false.
func (a GroundAction) EffectRem() []Literal { return a.effectRem }

// IsPersistence reports whether this is a no-op/persistence action
// synthesized to carry a literal unchanged from one planning-graph level to
// the next, rather than a grounded domain action.
func (a GroundAction) IsPersistence() bool { return a.isPersistence }

// AppliesTo reports whether the action's preconditions are satisfied by fs.
func (a GroundAction) AppliesTo(fs FluentState) bool {
	for _, p := range a.precondPos {
		if !fs.Has(p) {
			return false
		}
	}
	for _, n := range a.precondNeg {
		if fs.Has(n) {
			return false
		}
	}
	return true
}

// Apply returns the FluentState that results from executing the action
// against fs. The caller must have already checked AppliesTo; Apply does not
// re-validate preconditions.
func (a GroundAction) Apply(fs FluentState) FluentState {
	pos := make([]Literal, 0, len(fs.Pos)+len(a.effectAdd))
	neg := make([]Literal, 0, len(fs.Neg)+len(a.effectRem))

	removed := make(map[string]bool, len(a.effectRem))
	for _, r := range a.effectRem {
		removed[r.Key()] = true
	}
	added := make(map[string]bool, len(a.effectAdd))
	for _, add := range a.effectAdd {
		added[add.Key()] = true
	}

	for _, p := range fs.Pos {
		if removed[p.Key()] {
			continue
		}
		if added[p.Key()] {
			continue
		}
		pos = append(pos, p)
	}
	for _, n := range fs.Neg {
		if added[n.Key()] {
			continue
		}
		if removed[n.Key()] {
			continue
		}
		neg = append(neg, n)
	}
	pos = append(pos, a.effectAdd...)
	neg = append(neg, a.effectRem...)

	return FluentState{Pos: pos, Neg: neg}
}
