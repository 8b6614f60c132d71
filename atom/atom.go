// Package atom provides the propositional-symbol value type used throughout
// an existential graph.
package atom

import (
	"fmt"
	"strings"
	"unicode"
)

// reservedRunes may never appear in an atom name: they delimit the textual
// graph grammar (see the graph package's codec).
const reservedRunes = "[],"

// Atom is an immutable, comparable propositional symbol. Two atoms are equal
// iff their names are byte-for-byte equal.
type Atom struct {
	name string
}

// New returns the Atom named name.
//
// name must be non-empty, contain no whitespace, and contain none of the
// grammar delimiters '[', ']', ','.
func New(name string) (Atom, error) {
	if name == "" {
		return Atom{}, fmt.Errorf("atom: name must not be empty")
	}
	if strings.ContainsAny(name, reservedRunes) {
		return Atom{}, fmt.Errorf("atom: name %q contains a reserved character", name)
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return Atom{}, fmt.Errorf("atom: name %q contains whitespace", name)
	}
	return Atom{name: name}, nil
}

// MustNew is like New but panics on an invalid name. Intended for tests and
// literal atoms known to be valid at compile time.
func MustNew(name string) Atom {
	a, err := New(name)
	if err != nil {
		panic(err)
	}
	return a
}

// Name returns the atom's underlying name.
func (a Atom) Name() string {
	return a.name
}

// String implements fmt.Stringer, returning the name verbatim.
func (a Atom) String() string {
	return a.name
}
