package graph

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dorian451/eg-graph-editor/atom"
)

// Grammar (spec.md §4.4.1):
//
//	graph := "[" inner "]"
//	inner := ε | item ("," item)*
//	item  := atom | graph
//	atom  := one or more non-whitespace chars excluding '[' ']' ','
//
// Whitespace outside atoms is ignored.

// ToString serializes the cut named id (and everything nested under it) to
// the bracketed textual grammar. Item order within a cut is not part of the
// contract; this implementation fixes a lexicographic order so output is
// reproducible.
func ToString(g *Graph, id CutId) (string, error) {
	atoms, err := g.AtomsOf(id)
	if err != nil {
		return "", err
	}
	children, err := g.ChildrenOf(id)
	if err != nil {
		return "", err
	}

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
		s, err := ToString(g, c)
		if err != nil {
			return "", err
		}
		b.WriteString(s)
	}
	b.WriteByte(']')
	return b.String(), nil
}

// ParseIntoActions parses text as a graph literal and returns the batch of
// Actions that, applied to g with rootTarget as the outermost cut, would
// build the described content. It never mutates g, and does not read it
// either: building a batch is independent of current graph contents.
//
// rootTarget need not be the graph's actual root — it is simply the
// Existing cut that the outermost bracket's contents attach to, which lets
// the same parser serve FromString (rootTarget = a fresh graph's root) and
// Insertion/Iteration (rootTarget = an arbitrary existing cut).
func ParseIntoActions(g *Graph, text string, rootTarget CutId) ([]Action, error) {
	text = strings.TrimSpace(text)
	if len(text) == 0 || text[0] != '[' || text[len(text)-1] != ']' {
		return nil, fmt.Errorf("%w: missing outer brackets", ErrParse)
	}

	var actions []Action
	var levels []GraphTarget // front = top of stack, levels[0]
	var futureCounter int
	var curAtom strings.Builder

	flushAtom := func() error {
		if curAtom.Len() == 0 {
			return nil
		}
		if len(levels) == 0 {
			return fmt.Errorf("%w: atom outside any cut", ErrParse)
		}
		name, err := atom.New(curAtom.String())
		if err != nil {
			return fmt.Errorf("%w: %v", ErrParse, err)
		}
		actions = append(actions, NewAddAtom(levels[0], name))
		curAtom.Reset()
		return nil
	}

	for _, c := range text {
		switch {
		case c == '[':
			if curAtom.Len() != 0 {
				return nil, fmt.Errorf("%w: '[' follows unterminated atom", ErrParse)
			}
			if len(levels) == 0 {
				levels = append([]GraphTarget{Existing(rootTarget)}, levels...)
			} else {
				futureCounter++
				target := Future(futureCounter)
				actions = append(actions, NewAddSubgraph(levels[0], target))
				levels = append([]GraphTarget{target}, levels...)
			}

		case c == ']':
			if err := flushAtom(); err != nil {
				return nil, err
			}
			if len(levels) == 0 {
				return nil, fmt.Errorf("%w: unbalanced ']'", ErrParse)
			}
			levels = levels[1:]

		case c == ',':
			if err := flushAtom(); err != nil {
				return nil, err
			}

		case !unicode.IsSpace(c):
			curAtom.WriteRune(c)
		}
	}

	if len(levels) != 0 {
		return nil, fmt.Errorf("%w: unclosed '['", ErrParse)
	}
	return actions, nil
}
