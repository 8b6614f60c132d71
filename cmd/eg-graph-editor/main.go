// Command eg-graph-editor is a small witness program that exercises the
// graph/action/rule packages end to end: it parses a graph literal, applies
// one inference rule to it, and prints the result. It is not part of the
// library surface, just a runnable demonstration in the spirit of the
// teacher's cmd/demo.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/dorian451/eg-graph-editor/action"
	"github.com/dorian451/eg-graph-editor/graph"
	"github.com/dorian451/eg-graph-editor/rule"
)

var (
	graphText = flag.String("graph", "[A,[B],[]]", "graph literal to start from")
	ruleName  = flag.String("rule", "double-cut-draw", "rule to apply: double-cut-draw, insertion")
	target    = flag.Int("target", 0, "index (breadth-first, root excluded) of the cut the rule targets")
	content   = flag.String("content", "[C]", "graph literal for an insertion rule's new content")
)

func main() {
	flag.Parse()

	g, err := action.FromString(*graphText)
	if err != nil {
		log.Fatalf("parsing %q: %v", *graphText, err)
	}
	before, err := graph.ToString(g, g.RootId())
	if err != nil {
		log.Fatalf("serializing starting graph: %v", err)
	}
	log.Printf("start: %s", before)

	cuts := breadthFirstCuts(g)
	if *target < 0 || *target >= len(cuts) {
		log.Fatalf("target %d out of range, graph has %d non-root cuts", *target, len(cuts))
	}
	targetId := cuts[*target]

	r, err := buildRule(g, targetId)
	if err != nil {
		log.Fatalf("building rule %q: %v", *ruleName, err)
	}

	batch, err := r.Compile(g)
	if err != nil {
		log.Fatalf("compiling rule: %v", err)
	}
	inverse, err := action.ApplyBatch(batch, g)
	if err != nil {
		log.Fatalf("applying rule: %v", err)
	}

	after, err := graph.ToString(g, g.RootId())
	if err != nil {
		log.Fatalf("serializing result: %v", err)
	}
	fmt.Printf("after %s on cut #%d: %s\n", *ruleName, *target, after)
	fmt.Printf("inverse batch has %d actions\n", len(inverse))
}

func buildRule(g *graph.Graph, targetId graph.CutId) (rule.Rule, error) {
	switch strings.ToLower(*ruleName) {
	case "double-cut-draw":
		atoms, err := g.AtomsOf(targetId)
		if err != nil {
			return rule.Rule{}, err
		}
		children, err := g.ChildrenOf(targetId)
		if err != nil {
			return rule.Rule{}, err
		}
		return rule.NewDoubleCutDraw(targetId, atoms, children), nil

	case "insertion":
		return rule.NewInsertion(targetId, *content), nil

	default:
		return rule.Rule{}, fmt.Errorf("unknown rule %q", *ruleName)
	}
}

func breadthFirstCuts(g *graph.Graph) []graph.CutId {
	var order []graph.CutId
	queue := []graph.CutId{g.RootId()}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		children, err := g.ChildrenOf(id)
		if err != nil {
			continue
		}
		for _, c := range children {
			order = append(order, c)
			queue = append(queue, c)
		}
	}
	return order
}
