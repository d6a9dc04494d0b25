package frontier

import (
	"fmt"

	"github.com/katalvlaran/bnb/core"
)

// New builds the frontier for strategy and seeds it with root.
//
// For BestFirst the root's ordering key (upper bound when maximising, lower
// bound when minimising) is computed before insertion.
//
// Errors:
//   - core.ErrConfiguration for an unknown strategy (nothing is computed).
//   - ErrNilInstance for a nil root.
//   - Any error from the root's direction or bound computation.
func New[S any](strategy Strategy, root core.Instance[S]) (Frontier[S], error) {
	s, err := ParseStrategy(string(strategy))
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrNilInstance
	}

	var f Frontier[S]
	switch s {
	case BestFirst:
		d, derr := core.CheckDirection(root)
		if derr != nil {
			return nil, derr
		}
		f = NewBestFirst[S](d)
	case DepthFirst:
		f = NewDepthFirst[S]()
	default:
		f = NewBreadthFirst[S]()
	}
	if err = f.Push(root); err != nil {
		return nil, fmt.Errorf("frontier: seed root: %w", err)
	}

	return f, nil
}
