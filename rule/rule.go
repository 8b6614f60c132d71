package rule

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/atom"
	"github.com/dorian451/eg-graph-editor/graph"
)

// Kind enumerates the five sound alpha-calculus inference rules.
type Kind int

const (
	DoubleCutDraw Kind = iota
	DoubleCutErase
	Insertion
	Erasure
	Iteration
)

// AtomRef names an atom together with the cut that directly contains it.
// Erasure uses this since each selected atom may live in a different cut.
type AtomRef struct {
	Parent graph.CutId
	Atom   atom.Atom
}

// Rule is a tagged variant over the five inference rules. Only the fields
// relevant to Kind are meaningful; see the New* constructors for the exact
// field set each rule uses.
type Rule struct {
	Kind Kind

	// DoubleCutDraw, DoubleCutErase, Insertion
	Target graph.CutId

	// DoubleCutDraw: elements of Target to wrap in the double cut.
	SelectedAtoms    []atom.Atom
	SelectedChildren []graph.CutId

	// Insertion: graph-grammar text to parse into Target.
	NewContent string

	// Erasure: subgraphs to delete outright (recursively), and individual
	// atoms to delete (each with the cut that directly holds it).
	EraseChildren []graph.CutId
	EraseAtoms    []AtomRef

	// Iteration: Backwards selects deiteration instead of iteration.
	// Parent/ParentAtoms/ParentChildren name the selection; Destination is
	// where the rule copies it to (iteration) or where the copy must already
	// be verified to live (deiteration).
	Backwards      bool
	Parent         graph.CutId
	ParentAtoms    []atom.Atom
	ParentChildren []graph.CutId
	Destination    graph.CutId
}

// NewDoubleCutDraw builds a DoubleCutDraw rule: wrap the selected atoms and
// children of target in two nested empty cuts.
func NewDoubleCutDraw(target graph.CutId, atoms []atom.Atom, children []graph.CutId) Rule {
	return Rule{Kind: DoubleCutDraw, Target: target, SelectedAtoms: atoms, SelectedChildren: children}
}

// NewDoubleCutErase builds a DoubleCutErase rule: collapse target (an empty
// outer cut containing exactly one inner cut) back into its parent.
func NewDoubleCutErase(target graph.CutId) Rule {
	return Rule{Kind: DoubleCutErase, Target: target}
}

// NewInsertion builds an Insertion rule: parse newContent and insert it into
// target, which must sit at an odd (negative) level.
func NewInsertion(target graph.CutId, newContent string) Rule {
	return Rule{Kind: Insertion, Target: target, NewContent: newContent}
}

// NewErasure builds an Erasure rule: delete the given subgraphs (recursively)
// and atoms, each of which must live at an even (positive) level.
func NewErasure(children []graph.CutId, atoms []AtomRef) Rule {
	return Rule{Kind: Erasure, EraseChildren: children, EraseAtoms: atoms}
}

// NewIteration builds an Iteration (backwards=false) or Deiteration
// (backwards=true) rule.
func NewIteration(backwards bool, parent graph.CutId, atoms []atom.Atom, children []graph.CutId, destination graph.CutId) Rule {
	return Rule{
		Kind:           Iteration,
		Backwards:      backwards,
		Parent:         parent,
		ParentAtoms:    atoms,
		ParentChildren: children,
		Destination:    destination,
	}
}

// Compile validates the rule's preconditions against g's current state and
// lowers it to the action batch that realizes it. Compile never mutates g.
func (r Rule) Compile(g *graph.Graph) ([]graph.Action, error) {
	switch r.Kind {
	case DoubleCutDraw:
		return compileDoubleCutDraw(r, g)
	case DoubleCutErase:
		return compileDoubleCutErase(r, g)
	case Insertion:
		return compileInsertion(r, g)
	case Erasure:
		return compileErasure(r, g)
	case Iteration:
		return compileIteration(r, g)
	default:
		return nil, fmt.Errorf("rule: unrecognized rule kind %d", r.Kind)
	}
}
