package rule_test

import (
	"testing"

	"github.com/dorian451/eg-graph-editor/action"
	"github.com/dorian451/eg-graph-editor/atom"
	"github.com/dorian451/eg-graph-editor/graph"
	"github.com/dorian451/eg-graph-editor/rule"
	"github.com/stretchr/testify/require"
)

func TestIterationCopiesSelectionIntoDescendant(t *testing.T) {
	g, err := action.FromString("[A,[B],[]]")
	require.NoError(t, err)
	children, err := g.ChildrenOf(g.RootId())
	require.NoError(t, err)
	require.Len(t, children, 2)
	cut0, cut1 := children[0], children[1]
	cut0Atoms, err := g.AtomsOf(cut0)
	require.NoError(t, err)
	if len(cut0Atoms) == 0 {
		// ChildrenOf orders by cut id, which is random: make cut0 the [B] cut.
		cut0, cut1 = cut1, cut0
	}

	r := rule.NewIteration(false, g.RootId(), []atom.Atom{atom.MustNew("A")}, []graph.CutId{cut0}, cut1)
	batch, err := r.Compile(g)
	require.NoError(t, err)
	_, err = action.ApplyBatch(batch, g)
	require.NoError(t, err)

	rootAtoms, err := g.AtomsOf(g.RootId())
	require.NoError(t, err)
	require.Len(t, rootAtoms, 1, "iteration copies, it does not remove the original")

	cut1Atoms, err := g.AtomsOf(cut1)
	require.NoError(t, err)
	require.Len(t, cut1Atoms, 1)
	require.Equal(t, "A", cut1Atoms[0].Name())

	cut1Children, err := g.ChildrenOf(cut1)
	require.NoError(t, err)
	require.Len(t, cut1Children, 1, "cut0's copy must appear as a new child of cut1")
}

func TestIterationRequiresParentIsAncestorOfDestination(t *testing.T) {
	g, err := action.FromString("[A,[]]")
	require.NoError(t, err)
	children, err := g.ChildrenOf(g.RootId())
	require.NoError(t, err)
	cut0 := children[0]

	// cut0 is not an ancestor of root, so iterating from cut0 (the parent)
	// into root (the destination) must fail the direction check.
	r := rule.NewIteration(false, cut0, nil, nil, g.RootId())
	_, err = r.Compile(g)
	require.ErrorIs(t, err, rule.ErrInvalidRuleApplication)
}

func TestIterationThenDeiterationRestoresOriginalShape(t *testing.T) {
	g, err := action.FromString("[A,[B],[]]")
	require.NoError(t, err)
	before, err := graph.ToString(g, g.RootId())
	require.NoError(t, err)

	children, err := g.ChildrenOf(g.RootId())
	require.NoError(t, err)
	cut0, cut1 := children[0], children[1]

	iter := rule.NewIteration(false, g.RootId(), []atom.Atom{atom.MustNew("A")}, []graph.CutId{cut0}, cut1)
	iterBatch, err := iter.Compile(g)
	require.NoError(t, err)
	_, err = action.ApplyBatch(iterBatch, g)
	require.NoError(t, err)

	cut1Children, err := g.ChildrenOf(cut1)
	require.NoError(t, err)
	require.Len(t, cut1Children, 1)
	copiedCut0 := cut1Children[0]

	deiter := rule.NewIteration(true, cut1, []atom.Atom{atom.MustNew("A")}, []graph.CutId{copiedCut0}, g.RootId())
	deiterBatch, err := deiter.Compile(g)
	require.NoError(t, err)
	_, err = action.ApplyBatch(deiterBatch, g)
	require.NoError(t, err)

	after, err := graph.ToString(g, g.RootId())
	require.NoError(t, err)

	beforeGraph, err := action.FromString(before)
	require.NoError(t, err)
	afterGraph, err := action.FromString(after)
	require.NoError(t, err)
	equal, err := graph.StructurallyEqual(beforeGraph, beforeGraph.RootId(), afterGraph, afterGraph.RootId())
	require.NoError(t, err)
	require.True(t, equal, "iterating then deiterating the same selection must restore the original shape")
}

func TestDeiterationRequiresTargetIsAncestorOfParent(t *testing.T) {
	g, err := action.FromString("[A,[B]]")
	require.NoError(t, err)
	children, err := g.ChildrenOf(g.RootId())
	require.NoError(t, err)
	cut0 := children[0]

	r := rule.NewIteration(true, g.RootId(), []atom.Atom{atom.MustNew("A")}, nil, cut0)
	_, err = r.Compile(g)
	require.ErrorIs(t, err, rule.ErrInvalidRuleApplication)
}

func TestDeiterationRejectsSelectionWithNoSurvivingCopy(t *testing.T) {
	g, err := action.FromString("[A,[B]]")
	require.NoError(t, err)
	children, err := g.ChildrenOf(g.RootId())
	require.NoError(t, err)
	cut0 := children[0]

	// cut0 holds only "B"; nothing under root (the proposed Destination)
	// has a surviving copy of atom B, so deiterating it must be rejected
	// even though root is a (trivial) ancestor of cut0.
	r := rule.NewIteration(true, cut0, []atom.Atom{atom.MustNew("B")}, nil, g.RootId())
	_, err = r.Compile(g)
	require.ErrorIs(t, err, rule.ErrInvalidRuleApplication)
}
