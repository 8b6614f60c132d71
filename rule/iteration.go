package rule

import (
	"fmt"
	"strings"

	"github.com/dorian451/eg-graph-editor/atom"
	"github.com/dorian451/eg-graph-editor/graph"
)

// compileIteration validates the selection and direction, then dispatches to
// the insert (iteration) or delete (deiteration) compiler.
func compileIteration(r Rule, g *graph.Graph) ([]graph.Action, error) {
	atoms, err := g.AtomsOf(r.Parent)
	if err != nil {
		return nil, err
	}
	children, err := g.ChildrenOf(r.Parent)
	if err != nil {
		return nil, err
	}
	atoms_, children_ := atomSet(atoms), cutSet(children)

	for _, a := range r.ParentAtoms {
		if !atoms_[a] {
			return nil, fmt.Errorf("%w: selected atom %q is not in parent", ErrInvalidRuleApplication, a)
		}
	}
	for _, c := range r.ParentChildren {
		if !children_[c] {
			return nil, fmt.Errorf("%w: selected subgraph %q is not a child of parent", ErrInvalidRuleApplication, c)
		}
	}
	if r.Parent == r.Destination {
		return nil, fmt.Errorf("%w: parent and target must differ", ErrInvalidRuleApplication)
	}

	if !r.Backwards {
		ok, err := g.IsAncestor(r.Parent, r.Destination)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("%w: iteration requires parent to be an ancestor of target", ErrInvalidRuleApplication)
		}
		return compileIterationInsert(r, g)
	}

	ok, err := g.IsAncestor(r.Destination, r.Parent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: deiteration requires target to be an ancestor of parent", ErrInvalidRuleApplication)
	}
	if err := verifyDeiterationHasSurvivingCopy(r, g); err != nil {
		return nil, err
	}
	return compileIterationDelete(r, g)
}

// compileIterationInsert implements iteration proper: the selection is
// serialized (spec.md §4.4.2) and reparsed into Destination, reusing subtree
// cloning via the textual codec rather than a dedicated deep-copy walk.
func compileIterationInsert(r Rule, g *graph.Graph) ([]graph.Action, error) {
	text, err := serializeSelection(r.ParentAtoms, r.ParentChildren, g)
	if err != nil {
		return nil, err
	}
	return graph.ParseIntoActions(g, text, r.Destination)
}

// compileIterationDelete implements deiteration: the selected atoms and
// (recursively) child subgraphs are removed from Parent outright, undoing
// exactly what an iteration with the same selection shape would have added.
func compileIterationDelete(r Rule, g *graph.Graph) ([]graph.Action, error) {
	var actions []graph.Action

	queue := append([]graph.CutId(nil), r.ParentChildren...)
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

	for _, a := range r.ParentAtoms {
		actions = prepend(actions, graph.NewDeleteAtom(graph.Existing(r.Parent), a))
	}

	return actions, nil
}

// verifyDeiterationHasSurvivingCopy resolves the open question noted in
// spec.md §9(4): we require that deiterated material genuinely be a
// redundant copy of something still reachable from Destination, so that
// deiteration can never erase the only remaining occurrence of a fact. Every
// deiterated atom name must occur somewhere in Destination's subtree, and
// every deiterated child's serialized text must match some cut in it.
// Parent's own subtree is excluded from that search: it is the copy about to
// be deleted, so its presence there can never count as "surviving".
func verifyDeiterationHasSurvivingCopy(r Rule, g *graph.Graph) error {
	liveAtoms, subtreeTexts, err := collectSubtree(r.Destination, g)
	if err != nil {
		return err
	}
	excludedAtoms, excludedTexts, err := collectSubtree(r.Parent, g)
	if err != nil {
		return err
	}
	// Subtract counts rather than deleting keys outright: Parent's subtree
	// is itself part of Destination's subtree, but a same-named atom or
	// identically-shaped cut elsewhere under Destination is a genuinely
	// distinct surviving occurrence and must not be cancelled out by it.
	for a, n := range excludedAtoms {
		liveAtoms[a] -= n
	}
	for text, n := range excludedTexts {
		subtreeTexts[text] -= n
	}

	for _, a := range r.ParentAtoms {
		if liveAtoms[a] <= 0 {
			return fmt.Errorf("%w: deiterated atom %q does not occur under target", ErrInvalidRuleApplication, a)
		}
	}
	for _, c := range r.ParentChildren {
		text, err := graph.ToString(g, c)
		if err != nil {
			return err
		}
		if subtreeTexts[text] <= 0 {
			return fmt.Errorf("%w: deiterated subgraph has no surviving copy under target", ErrInvalidRuleApplication)
		}
	}
	return nil
}

func serializeSelection(atoms []atom.Atom, children []graph.CutId, g *graph.Graph) (string, error) {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for _, a := range atoms {
		if !first {
			b.WriteByte(',')
		}
		first = false
		b.WriteString(a.String())
	}
	for _, c := range children {
		if !first {
			b.WriteByte(',')
		}
		first = false
		s, err := graph.ToString(g, c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(']')
	return b.String(), nil
}

func collectSubtree(id graph.CutId, g *graph.Graph) (map[atom.Atom]int, map[string]int, error) {
	atoms := make(map[atom.Atom]int)
	texts := make(map[string]int)

	var walk func(graph.CutId) error
	walk = func(id graph.CutId) error {
		text, err := graph.ToString(g, id)
		if err != nil {
			return err
		}
		texts[text]++

		cutAtoms, err := g.AtomsOf(id)
		if err != nil {
			return err
		}
		for _, a := range cutAtoms {
			atoms[a]++
		}

		children, err := g.ChildrenOf(id)
		if err != nil {
			return err
		}
		for _, c := range children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(id); err != nil {
		return nil, nil, err
	}
	return atoms, texts, nil
}
