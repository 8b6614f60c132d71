package graph

import "github.com/dorian451/eg-graph-editor/atom"

// subgraph is the per-cut record: its depth, the atoms directly inside it,
// and the ids of its direct children. Both atoms and children are sets —
// duplicate membership collapses, per spec.
type subgraph struct {
	level    int
	atoms    map[atom.Atom]struct{}
	children map[CutId]struct{}
}

func newSubgraph(level int) *subgraph {
	return &subgraph{
		level:    level,
		atoms:    make(map[atom.Atom]struct{}),
		children: make(map[CutId]struct{}),
	}
}

func (s *subgraph) hasAtom(a atom.Atom) bool {
	_, ok := s.atoms[a]
	return ok
}

func (s *subgraph) hasChild(id CutId) bool {
	_, ok := s.children[id]
	return ok
}

// sortedAtoms returns the cut's atoms in a fixed (lexicographic) order.
// Ordering is not part of the spec's contract, but fixing it makes
// serialization and test output deterministic.
func (s *subgraph) sortedAtoms() []atom.Atom {
	out := make([]atom.Atom, 0, len(s.atoms))
	for a := range s.atoms {
		out = append(out, a)
	}
	sortAtoms(out)
	return out
}

// sortedChildren returns the cut's children in a fixed (lexicographic) order.
func (s *subgraph) sortedChildren() []CutId {
	out := make([]CutId, 0, len(s.children))
	for id := range s.children {
		out = append(out, id)
	}
	sortCutIds(out)
	return out
}
