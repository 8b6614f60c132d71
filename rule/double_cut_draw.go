package rule

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/graph"
)

// compileDoubleCutDraw wraps the rule's selected atoms and children of
// Target in two nested empty cuts: AddSubgraph draws the outer cut, another
// AddSubgraph draws the inner cut, and the selection is moved/re-added into
// the inner cut.
func compileDoubleCutDraw(r Rule, g *graph.Graph) ([]graph.Action, error) {
	atoms, err := g.AtomsOf(r.Target)
	if err != nil {
		return nil, err
	}
	children, err := g.ChildrenOf(r.Target)
	if err != nil {
		return nil, err
	}
	atoms_, children_ := atomSet(atoms), cutSet(children)

	for _, a := range r.SelectedAtoms {
		if !atoms_[a] {
			return nil, fmt.Errorf("%w: selected atom %q is not in target", ErrInvalidRuleApplication, a)
		}
	}
	for _, c := range r.SelectedChildren {
		if !children_[c] {
			return nil, fmt.Errorf("%w: selected subgraph %q is not a child of target", ErrInvalidRuleApplication, c)
		}
	}

	outer, inner := graph.Future(0), graph.Future(1)
	actions := []graph.Action{
		graph.NewAddSubgraph(graph.Existing(r.Target), outer),
		graph.NewAddSubgraph(outer, inner),
	}
	for _, a := range r.SelectedAtoms {
		actions = append(actions,
			graph.NewDeleteAtom(graph.Existing(r.Target), a),
			graph.NewAddAtom(inner, a),
		)
	}
	for _, c := range r.SelectedChildren {
		actions = append(actions, graph.NewMoveSubgraph(graph.Existing(c), inner))
	}
	return actions, nil
}
