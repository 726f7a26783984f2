package graphplan

import "github.com/gitrdm/graphplan/internal/domain"

// sHandle and aHandle are non-owning references into a level's node arena:
// an index plus the level it belongs to. They replace pointers so that an
// entire PlanningGraph can be dropped as a unit and nothing outlives it.
type sHandle struct {
	level int
	index int
}

type aHandle struct {
	level int
	index int
}

// sNode is a literal node at a given S-level: a ground literal together with
// its polarity (true = the literal holds, false = its negation holds).
type sNode struct {
	literal  domain.Literal
	positive bool

	// parents are the A-nodes in the previous level whose effects produce
	// this literal at this polarity. Empty at level 0.
	parents []aHandle
	// children are the A-nodes in the next level that consume this literal
	// as a precondition at this polarity.
	children []aHandle

	// mutex holds the indices, within this same S-level, of literal nodes
	// mutually exclusive with this one.
	mutex []int
}

// aNode is an action node at a given A-level: a ground action together with
// links to the S-nodes it consumes and produces.
type aNode struct {
	action domain.GroundAction

	// parents are the precondition S-nodes in the previous level.
	parents []sHandle
	// children are the effect S-nodes in the next level (both added and
	// retained-via-persistence literals).
	children []sHandle

	// mutex holds the indices, within this same A-level, of action nodes
	// mutually exclusive with this one.
	mutex []int
}
