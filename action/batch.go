package action

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/graph"
)

func resolveTarget(t graph.GraphTarget, bound map[int]graph.CutId) (graph.CutId, error) {
	switch t.Kind {
	case graph.KindExisting:
		return t.ExistingId, nil
	case graph.KindFuture:
		id, ok := bound[t.FutureSlot]
		if !ok {
			return "", fmt.Errorf("%w: slot %d", ErrUndefinedFuture, t.FutureSlot)
		}
		return id, nil
	default:
		return "", fmt.Errorf("action: unrecognized target kind %d", t.Kind)
	}
}

// ApplyBatch applies actions to g in order and returns the batch that undoes
// them, with inverses in front-insertion order so that applying the returned
// batch executes them in reverse (LIFO), which is required whenever a later
// action in the forward batch depended on an earlier one (e.g. an AddAtom
// into a cut that a prior AddSubgraph just created).
//
// If any action fails, ApplyBatch returns the error immediately. Whatever
// mutation already happened is not rolled back — callers that need
// atomicity must snapshot beforehand or treat the error as fatal to the
// whole batch, per spec.
func ApplyBatch(actions []graph.Action, g *graph.Graph) ([]graph.Action, error) {
	var inverse []graph.Action
	bound := make(map[int]graph.CutId)

	prepend := func(a graph.Action) {
		inverse = append([]graph.Action{a}, inverse...)
	}

	for _, act := range actions {
		switch act.Kind {
		case graph.AddAtom:
			t, err := resolveTarget(act.Target, bound)
			if err != nil {
				return nil, err
			}
			if err := g.InsertAtom(t, act.Atom); err != nil {
				return nil, err
			}
			prepend(graph.NewDeleteAtom(graph.Existing(t), act.Atom))

		case graph.DeleteAtom:
			t, err := resolveTarget(act.Target, bound)
			if err != nil {
				return nil, err
			}
			if _, err := g.RemoveAtom(t, act.Atom); err != nil {
				return nil, err
			}
			prepend(graph.NewAddAtom(graph.Existing(t), act.Atom))

		case graph.AddSubgraph:
			t, err := resolveTarget(act.Target, bound)
			if err != nil {
				return nil, err
			}
			switch act.NewSubgraph.Kind {
			case graph.KindExisting:
				newId := act.NewSubgraph.ExistingId
				if _, lvlErr := g.LevelOf(newId); lvlErr == nil {
					return nil, fmt.Errorf("%w: %q", ErrSubgraphIDExists, newId)
				}
				if err := g.InsertSubgraphWithId(newId, t); err != nil {
					return nil, err
				}
				prepend(graph.NewDeleteSubgraph(graph.Existing(newId)))

			case graph.KindFuture:
				if _, dup := bound[act.NewSubgraph.FutureSlot]; dup {
					return nil, fmt.Errorf("%w: slot %d is already bound", ErrUndefinedFuture, act.NewSubgraph.FutureSlot)
				}
				newId, err := g.InsertSubgraph(t)
				if err != nil {
					return nil, err
				}
				bound[act.NewSubgraph.FutureSlot] = newId
				prepend(graph.NewDeleteSubgraph(graph.Existing(newId)))

			default:
				return nil, fmt.Errorf("action: unrecognized target kind %d", act.NewSubgraph.Kind)
			}

		case graph.DeleteSubgraph:
			t, err := resolveTarget(act.Target, bound)
			if err != nil {
				return nil, err
			}
			parentId, err := g.ParentOf(t)
			if err != nil {
				return nil, err
			}
			if err := g.RemoveSubgraph(t, false); err != nil {
				return nil, err
			}
			prepend(graph.NewAddSubgraph(graph.Existing(parentId), graph.Existing(t)))

		case graph.MoveSubgraph:
			t, err := resolveTarget(act.Target, bound)
			if err != nil {
				return nil, err
			}
			d, err := resolveTarget(act.Dest, bound)
			if err != nil {
				return nil, err
			}
			srcId, err := g.ParentOf(t)
			if err != nil {
				return nil, err
			}
			if err := g.MoveSubgraph(t, d); err != nil {
				return nil, err
			}
			prepend(graph.NewMoveSubgraph(graph.Existing(t), graph.Existing(srcId)))

		default:
			return nil, fmt.Errorf("action: unrecognized action kind %d", act.Kind)
		}
	}

	return inverse, nil
}

// FromString builds a fresh Graph from its textual representation in one
// step: parse then apply. Equivalent to parsing into a batch against a new
// graph's root and applying it.
func FromString(text string) (*graph.Graph, error) {
	g := graph.New()
	batch, err := graph.ParseIntoActions(g, text, g.RootId())
	if err != nil {
		return nil, err
	}
	if _, err := ApplyBatch(batch, g); err != nil {
		return nil, err
	}
	return g, nil
}
