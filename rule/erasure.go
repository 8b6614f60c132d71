package rule

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/graph"
)

// compileErasure deletes the rule's selected subgraphs (recursively, atoms
// first) and standalone atoms, all of which must live at an even (positive)
// level.
func compileErasure(r Rule, g *graph.Graph) ([]graph.Action, error) {
	for _, c := range r.EraseChildren {
		level, err := g.LevelOf(c)
		if err != nil {
			return nil, err
		}
		if level%2 != 0 {
			return nil, fmt.Errorf("%w: erasure can only delete things from even levels", ErrInvalidRuleApplication)
		}
	}
	for _, ref := range r.EraseAtoms {
		level, err := g.LevelOf(ref.Parent)
		if err != nil {
			return nil, err
		}
		if level%2 != 0 {
			return nil, fmt.Errorf("%w: erasure can only delete things from even levels", ErrInvalidRuleApplication)
		}
	}

	var actions []graph.Action

	// Breadth-first over the subgraphs to delete: each cut's DeleteSubgraph
	// (and its own atoms' DeleteAtoms) are prepended as they're visited, so
	// a cut deeper in the queue — visited later — ends up earlier in the
	// final batch. That guarantees every cut is deleted only after its own
	// atoms and its children's deletions have already been emitted.
	queue := append([]graph.CutId(nil), r.EraseChildren...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		children, err := g.ChildrenOf(id)
		if err != nil {
			return nil, err
		}
		queue = append(queue, children...)

		actions = prepend(actions, graph.NewDeleteSubgraph(graph.Existing(id)))

		atoms, err := g.AtomsOf(id)
		if err != nil {
			return nil, err
		}
		for _, a := range atoms {
			actions = prepend(actions, graph.NewDeleteAtom(graph.Existing(id), a))
		}
	}

	for _, ref := range r.EraseAtoms {
		actions = prepend(actions, graph.NewDeleteAtom(graph.Existing(ref.Parent), ref.Atom))
	}

	return actions, nil
}
