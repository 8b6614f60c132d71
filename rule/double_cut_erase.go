package rule

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/graph"
)

// compileDoubleCutErase collapses an empty outer cut containing exactly one
// inner cut: the inner cut's contents are promoted to Target's parent, and
// both cuts are deleted.
func compileDoubleCutErase(r Rule, g *graph.Graph) ([]graph.Action, error) {
	atoms, err := g.AtomsOf(r.Target)
	if err != nil {
		return nil, err
	}
	children, err := g.ChildrenOf(r.Target)
	if err != nil {
		return nil, err
	}
	if len(atoms) != 0 || len(children) != 1 {
		return nil, fmt.Errorf("%w: the outer cut of a double cut must contain nothing but the inner cut", ErrInvalidRuleApplication)
	}

	// ParentOf fails with ErrUnknownCut for the root, which has no parent;
	// that enforces "target is not root" without a separate check.
	parent, err := g.ParentOf(r.Target)
	if err != nil {
		return nil, err
	}

	inner := children[0]
	innerAtoms, err := g.AtomsOf(inner)
	if err != nil {
		return nil, err
	}
	innerChildren, err := g.ChildrenOf(inner)
	if err != nil {
		return nil, err
	}

	var actions []graph.Action
	for _, a := range innerAtoms {
		actions = append(actions,
			graph.NewDeleteAtom(graph.Existing(inner), a),
			graph.NewAddAtom(graph.Existing(parent), a),
		)
	}
	for _, c := range innerChildren {
		actions = append(actions, graph.NewMoveSubgraph(graph.Existing(c), graph.Existing(parent)))
	}
	actions = append(actions,
		graph.NewDeleteSubgraph(graph.Existing(inner)),
		graph.NewDeleteSubgraph(graph.Existing(r.Target)),
	)
	return actions, nil
}
