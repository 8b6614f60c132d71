package rule

import (
	"fmt"

	"github.com/dorian451/eg-graph-editor/graph"
)

// compileInsertion parses NewContent and inserts it into Target, which must
// sit at an odd (negatively nested) level — inserting into a positive
// context would not be sound.
func compileInsertion(r Rule, g *graph.Graph) ([]graph.Action, error) {
	level, err := g.LevelOf(r.Target)
	if err != nil {
		return nil, err
	}
	if level%2 == 0 {
		return nil, fmt.Errorf("%w: insertion target must be at an odd level, got %d", ErrInvalidRuleApplication, level)
	}
	return graph.ParseIntoActions(g, r.NewContent, r.Target)
}
