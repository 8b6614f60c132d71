// Package rule compiles the five sound alpha-calculus inference rules into
// action batches against a graph.Graph. Rules never mutate the graph
// themselves — Compile only reads it and returns a batch for the caller to
// run through the action package.
package rule

import "errors"

// ErrInvalidRuleApplication is returned (wrapped with a reason) when a
// rule's preconditions are not met by the current graph state.
var ErrInvalidRuleApplication = errors.New("rule: invalid application of inference rule")
