package graph_test

import (
	"testing"

	"github.com/dorian451/eg-graph-editor/graph"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func atomNames(t *testing.T, g *graph.Graph, id graph.CutId) []string {
	t.Helper()
	atoms, err := g.AtomsOf(id)
	if err != nil {
		t.Fatalf("AtomsOf: %v", err)
	}
	names := make([]string, 0, len(atoms))
	for _, a := range atoms {
		names = append(names, a.Name())
	}
	return names
}

func TestStructurallyEqualIgnoresCutIdRenaming(t *testing.T) {
	g1 := applyText(t, "[A,[B],[]]")
	g2 := applyText(t, "[A,[],[B]]") // same shape, items in a different order

	equal, err := graph.StructurallyEqual(g1, g1.RootId(), g2, g2.RootId())
	if err != nil {
		t.Fatalf("StructurallyEqual: %v", err)
	}
	if !equal {
		t.Fatalf("expected graphs to be structurally equal up to renaming")
	}

	if diff := cmp.Diff(atomNames(t, g1, g1.RootId()), atomNames(t, g2, g2.RootId()),
		cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
		t.Fatalf("root atom sets differ despite structural equality (-g1 +g2):\n%s", diff)
	}
}

func TestStructurallyEqualDetectsDifferentShape(t *testing.T) {
	g1 := applyText(t, "[A,[B]]")
	g2 := applyText(t, "[A,[C]]")

	equal, err := graph.StructurallyEqual(g1, g1.RootId(), g2, g2.RootId())
	if err != nil {
		t.Fatalf("StructurallyEqual: %v", err)
	}
	if equal {
		t.Fatalf("graphs with different nested atom names must not compare equal")
	}
}

func TestStructurallyEqualDetectsDifferentChildCount(t *testing.T) {
	g1 := applyText(t, "[A,[B],[]]")
	g2 := applyText(t, "[A,[B]]")

	equal, err := graph.StructurallyEqual(g1, g1.RootId(), g2, g2.RootId())
	if err != nil {
		t.Fatalf("StructurallyEqual: %v", err)
	}
	if equal {
		t.Fatalf("graphs with a different number of children must not compare equal")
	}
}
