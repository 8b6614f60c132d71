package graph

import (
	"sort"

	"github.com/dorian451/eg-graph-editor/atom"
)

func sortAtoms(atoms []atom.Atom) {
	sort.Slice(atoms, func(i, j int) bool {
		return atoms[i].Name() < atoms[j].Name()
	})
}

func sortCutIds(ids []CutId) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i] < ids[j]
	})
}
