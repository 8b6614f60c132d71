package graph

import (
	"strconv"

	"github.com/dorian451/eg-graph-editor/atom"
)

// TargetKind distinguishes the two ways an Action can reference a cut.
type TargetKind int

const (
	// KindExisting references a cut id already present in the graph at the
	// moment the action runs.
	KindExisting TargetKind = iota
	// KindFuture references a placeholder slot, bound by the first
	// AddSubgraph in the same batch that introduces it.
	KindFuture
)

// GraphTarget is either an already-existing CutId or a Future placeholder
// slot resolved within the batch that uses it. Future slots exist only for
// the lifetime of one action batch; they are never observable outside it.
type GraphTarget struct {
	Kind       TargetKind
	ExistingId CutId
	FutureSlot int
}

// Existing builds a GraphTarget naming a cut that already exists.
func Existing(id CutId) GraphTarget {
	return GraphTarget{Kind: KindExisting, ExistingId: id}
}

// Future builds a GraphTarget naming an in-batch placeholder slot.
func Future(slot int) GraphTarget {
	return GraphTarget{Kind: KindFuture, FutureSlot: slot}
}

func (t GraphTarget) String() string {
	if t.Kind == KindFuture {
		return "future(" + strconv.Itoa(t.FutureSlot) + ")"
	}
	return string(t.ExistingId)
}

// ActionKind enumerates the five reversible mutation primitives.
type ActionKind int

const (
	AddAtom ActionKind = iota
	DeleteAtom
	AddSubgraph
	DeleteSubgraph
	MoveSubgraph
)

// Action is a tagged, reversible primitive mutation. Only the fields
// relevant to Kind are meaningful:
//
//	AddAtom, DeleteAtom: Target, Atom
//	AddSubgraph:         Target, NewSubgraph
//	DeleteSubgraph:      Target
//	MoveSubgraph:        Target, Dest
type Action struct {
	Kind        ActionKind
	Target      GraphTarget
	Atom        atom.Atom
	NewSubgraph GraphTarget
	Dest        GraphTarget
}

// NewAddAtom builds an AddAtom action.
func NewAddAtom(target GraphTarget, a atom.Atom) Action {
	return Action{Kind: AddAtom, Target: target, Atom: a}
}

// NewDeleteAtom builds a DeleteAtom action.
func NewDeleteAtom(target GraphTarget, a atom.Atom) Action {
	return Action{Kind: DeleteAtom, Target: target, Atom: a}
}

// NewAddSubgraph builds an AddSubgraph action. newSubgraph is itself a
// GraphTarget: Future(k) allocates a fresh cut and binds slot k; Existing(id)
// creates the cut under that exact id (failing if id is already in use).
func NewAddSubgraph(target, newSubgraph GraphTarget) Action {
	return Action{Kind: AddSubgraph, Target: target, NewSubgraph: newSubgraph}
}

// NewDeleteSubgraph builds a DeleteSubgraph action. The target must be empty
// at the time the action runs.
func NewDeleteSubgraph(target GraphTarget) Action {
	return Action{Kind: DeleteSubgraph, Target: target}
}

// NewMoveSubgraph builds a MoveSubgraph action.
func NewMoveSubgraph(target, dest GraphTarget) Action {
	return Action{Kind: MoveSubgraph, Target: target, Dest: dest}
}
