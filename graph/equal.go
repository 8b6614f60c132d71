package graph

import (
	"sort"
	"strings"
)

// StructurallyEqual reports whether the cuts id1 (in g1) and id2 (in g2)
// have the same shape: the same atoms and the same multiset of child
// shapes, recursively, ignoring the actual CutId values used. This is the
// "equal up to cut-id renaming" notion spec.md's testable properties rely on
// for round-trip and inverse-law checks.
func StructurallyEqual(g1 *Graph, id1 CutId, g2 *Graph, id2 CutId) (bool, error) {
	c1, err := canonicalShape(g1, id1)
	if err != nil {
		return false, err
	}
	c2, err := canonicalShape(g2, id2)
	if err != nil {
		return false, err
	}
	return c1 == c2, nil
}

// canonicalShape renders a cut's subtree into a string that is identical for
// any two graphs differing only by a consistent renaming of CutIds and by
// iteration order: atom names and child shapes are each sorted before
// joining.
func canonicalShape(g *Graph, id CutId) (string, error) {
	atoms, err := g.AtomsOf(id)
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(atoms))
	for _, a := range atoms {
		names = append(names, a.Name())
	}
	sort.Strings(names)

	children, err := g.ChildrenOf(id)
	if err != nil {
		return "", err
	}
	childShapes := make([]string, 0, len(children))
	for _, c := range children {
		shape, err := canonicalShape(g, c)
		if err != nil {
			return "", err
		}
		childShapes = append(childShapes, shape)
	}
	sort.Strings(childShapes)

	var b strings.Builder
	b.WriteByte('{')
	b.WriteString(strings.Join(names, ","))
	b.WriteByte(';')
	b.WriteString(strings.Join(childShapes, ","))
	b.WriteByte('}')
	return b.String(), nil
}
