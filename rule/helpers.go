package rule

import (
	"github.com/dorian451/eg-graph-editor/atom"
	"github.com/dorian451/eg-graph-editor/graph"
)

func atomSet(atoms []atom.Atom) map[atom.Atom]bool {
	m := make(map[atom.Atom]bool, len(atoms))
	for _, a := range atoms {
		m[a] = true
	}
	return m
}

func cutSet(ids []graph.CutId) map[graph.CutId]bool {
	m := make(map[graph.CutId]bool, len(ids))
	for _, id := range ids {
		m[id] = true
	}
	return m
}

// prepend returns the action list with a at the front, used throughout the
// rules that build their batch back-to-front so that, e.g., a subgraph's
// atoms are deleted before the subgraph itself.
func prepend(actions []graph.Action, a graph.Action) []graph.Action {
	return append([]graph.Action{a}, actions...)
}
