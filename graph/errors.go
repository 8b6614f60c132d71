package graph

import "errors"

// Sentinel errors returned (possibly wrapped with %w for detail) by every
// public Graph operation. Callers should match against these with errors.Is.
var (
	// ErrUnknownCut is returned when a CutId does not name a live cut.
	ErrUnknownCut = errors.New("graph: unknown cut")
	// ErrRootTargeted is returned when an operation that may not target the
	// root cut is asked to do so.
	ErrRootTargeted = errors.New("graph: operation cannot target the root cut")
	// ErrDuplicateID is returned when a caller-chosen CutId is already in use.
	ErrDuplicateID = errors.New("graph: cut id already in use")
	// ErrNotEmpty is returned by a non-recursive RemoveSubgraph on a cut that
	// still has atoms or children.
	ErrNotEmpty = errors.New("graph: cut is not empty")
	// ErrParse is returned by FromString/ParseIntoActions on malformed text.
	ErrParse = errors.New("graph: malformed graph text")
)
