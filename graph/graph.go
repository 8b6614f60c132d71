// Package graph implements the tree-of-cuts data model for an existential
// graph: a rooted tree of subgraphs ("cuts"), each holding a set of atoms and
// a set of child cuts, plus a textual codec for the whole tree.
package graph

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/atom"
)

// Graph is a tree of cuts rooted at Root. It owns every cut's atoms and
// topology, and tracks how many live cuts reference each atom name.
type Graph struct {
	root      CutId
	nodes     map[CutId]*subgraph
	parent    map[CutId]CutId
	atomUsage map[atom.Atom]int
}

// New returns an empty graph: a single root cut at level 0, no atoms.
func New() *Graph {
	root := newCutId()
	g := &Graph{
		root:      root,
		nodes:     make(map[CutId]*subgraph),
		parent:    make(map[CutId]CutId),
		atomUsage: make(map[atom.Atom]int),
	}
	g.nodes[root] = newSubgraph(0)
	return g
}

// RootId returns the id of the graph's root cut.
func (g *Graph) RootId() CutId {
	return g.root
}

func (g *Graph) get(id CutId) (*subgraph, error) {
	s, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCut, id)
	}
	return s, nil
}

// +-----------------+
// | Read operations |
// +-----------------+

// AtomsOf returns the atoms directly inside the given cut.
func (g *Graph) AtomsOf(id CutId) ([]atom.Atom, error) {
	s, err := g.get(id)
	if err != nil {
		return nil, err
	}
	return s.sortedAtoms(), nil
}

// ChildrenOf returns the direct child cut ids of the given cut.
func (g *Graph) ChildrenOf(id CutId) ([]CutId, error) {
	s, err := g.get(id)
	if err != nil {
		return nil, err
	}
	return s.sortedChildren(), nil
}

// ParentOf returns the id of the cut's parent. It fails with ErrUnknownCut
// both when id is absent and when id is the root — callers distinguish the
// two cases by comparing id against RootId first.
func (g *Graph) ParentOf(id CutId) (CutId, error) {
	p, ok := g.parent[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCut, id)
	}
	return p, nil
}

// LevelOf returns the cut's depth; the root is at level 0.
func (g *Graph) LevelOf(id CutId) (int, error) {
	s, err := g.get(id)
	if err != nil {
		return 0, err
	}
	return s.level, nil
}

// AllAtoms returns every atom name currently referenced by at least one cut
// in the graph.
func (g *Graph) AllAtoms() []atom.Atom {
	out := make([]atom.Atom, 0, len(g.atomUsage))
	for a, n := range g.atomUsage {
		if n > 0 {
			out = append(out, a)
		}
	}
	sortAtoms(out)
	return out
}

// IsAncestor reports whether a is a strict ancestor of b: walking b's parent
// chain eventually reaches a before reaching the root's (nonexistent)
// parent. Used by Iteration to validate rule direction.
func (g *Graph) IsAncestor(a, b CutId) (bool, error) {
	if _, err := g.get(a); err != nil {
		return false, err
	}
	if _, err := g.get(b); err != nil {
		return false, err
	}
	for b != g.root {
		p, err := g.ParentOf(b)
		if err != nil {
			return false, err
		}
		if p == a {
			return true, nil
		}
		b = p
	}
	return false, nil
}

// +---------------------+
// | Mutation operations |
// +---------------------+

// InsertAtom adds name to target's atom set. Adding a name already present is
// a no-op on both the cut and the global usage count.
func (g *Graph) InsertAtom(target CutId, name atom.Atom) error {
	s, err := g.get(target)
	if err != nil {
		return err
	}
	if !s.hasAtom(name) {
		s.atoms[name] = struct{}{}
		g.atomUsage[name]++
	}
	return nil
}

// InsertSubgraph creates a fresh, empty cut as a child of target and returns
// its id.
func (g *Graph) InsertSubgraph(target CutId) (CutId, error) {
	id := g.genUnusedId()
	if err := g.InsertSubgraphWithId(id, target); err != nil {
		return "", err
	}
	return id, nil
}

// InsertSubgraphWithId is like InsertSubgraph but the caller chooses id. It
// exists so action replay (undo of a DeleteSubgraph) can recreate a cut under
// its original id.
func (g *Graph) InsertSubgraphWithId(id, target CutId) error {
	t, err := g.get(target)
	if err != nil {
		return err
	}
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	g.nodes[id] = newSubgraph(t.level + 1)
	t.children[id] = struct{}{}
	g.parent[id] = target
	return nil
}

// MoveSubgraph reparents target to dest, and recomputes the level of target
// and every descendant of target so that LevelOf stays correct afterward.
func (g *Graph) MoveSubgraph(target, dest CutId) error {
	if target == g.root {
		return fmt.Errorf("%w: %q", ErrRootTargeted, target)
	}
	src, err := g.ParentOf(target)
	if err != nil {
		return err
	}
	for _, id := range [...]CutId{src, target, dest} {
		if _, err := g.get(id); err != nil {
			return err
		}
	}
	srcNode, _ := g.get(src)
	if !srcNode.hasChild(target) {
		return fmt.Errorf("%w: %q", ErrUnknownCut, target)
	}
	destNode, _ := g.get(dest)

	delete(srcNode.children, target)
	destNode.children[target] = struct{}{}
	g.parent[target] = dest

	g.relevelSubtree(target, destNode.level+1)
	return nil
}

// relevelSubtree sets id's level to newLevel and recursively fixes every
// descendant's level. The reference implementation only re-leveled the
// target itself, leaving descendants stale; spec.md §4.2.1 calls this out as
// a bug to fix.
func (g *Graph) relevelSubtree(id CutId, newLevel int) {
	s := g.nodes[id]
	s.level = newLevel
	for child := range s.children {
		g.relevelSubtree(child, newLevel+1)
	}
}

// RemoveAtom removes name from target's atom set if present, decrementing
// its usage count. freed reports whether this removal dropped the atom's
// global usage to zero.
func (g *Graph) RemoveAtom(target CutId, name atom.Atom) (freed bool, err error) {
	s, err := g.get(target)
	if err != nil {
		return false, err
	}
	if !s.hasAtom(name) {
		return false, nil
	}
	delete(s.atoms, name)
	return g.decrementAtom(name), nil
}

func (g *Graph) decrementAtom(a atom.Atom) bool {
	g.atomUsage[a]--
	if g.atomUsage[a] < 1 {
		delete(g.atomUsage, a)
		return true
	}
	return false
}

// RemoveSubgraph deletes target. If recursive is false, target must have no
// atoms and no children. If recursive is true, target's entire subtree is
// deleted, decrementing usage for every contained atom along the way.
func (g *Graph) RemoveSubgraph(target CutId, recursive bool) error {
	if target == g.root {
		return fmt.Errorf("%w: %q", ErrRootTargeted, target)
	}
	s, err := g.get(target)
	if err != nil {
		return err
	}
	if !recursive && (len(s.atoms) != 0 || len(s.children) != 0) {
		return fmt.Errorf("%w: %q", ErrNotEmpty, target)
	}

	parentId, err := g.ParentOf(target)
	if err != nil {
		// Invariant §3.2.2 guarantees this cannot happen for a cut present
		// in nodes; the reference implementation panics here instead.
		return err
	}
	if parentNode, ok := g.nodes[parentId]; ok {
		delete(parentNode.children, target)
	}

	delete(g.nodes, target)
	delete(g.parent, target)

	for a := range s.atoms {
		g.decrementAtom(a)
	}
	for child := range s.children {
		if err := g.RemoveSubgraph(child, recursive); err != nil {
			return err
		}
	}
	return nil
}

// genUnusedId generates CutIds until one is not already in use.
func (g *Graph) genUnusedId() CutId {
	for {
		id := newCutId()
		if _, exists := g.nodes[id]; !exists {
			return id
		}
	}
}
