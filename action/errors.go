// Package action runs ordered batches of graph.Action primitives against a
// graph.Graph, resolving Future placeholders within the batch and producing
// the inverse batch needed for undo.
package action

import "errors"

var (
	// ErrUndefinedFuture is returned when an action references a Future
	// slot that no earlier AddSubgraph in the same batch introduced, or when
	// an AddSubgraph names a Future slot that an earlier one already bound.
	ErrUndefinedFuture = errors.New("action: future graph target was never defined in this batch")
	// ErrSubgraphIDExists is returned when AddSubgraph{Target, Existing(id)}
	// names an id that is already present in the graph.
	ErrSubgraphIDExists = errors.New("action: cannot create subgraph with an id that already exists")
)
