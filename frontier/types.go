// Package frontier: strategy identifiers, sentinel errors and the Frontier contract.
package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bnb/core"
)

// ErrEmptyFrontier is returned by Pop on an empty frontier.
var ErrEmptyFrontier = errors.New("frontier: pop from empty frontier")

// ErrNilInstance is returned when a nil instance is pushed.
var ErrNilInstance = errors.New("frontier: nil instance")

// Strategy identifies an exploration order.
type Strategy string

const (
	// BestFirst explores the most optimistic node first.
	BestFirst Strategy = "best_first"

	// DepthFirst explores the most recently discovered node first.
	DepthFirst Strategy = "depth_first"

	// BreadthFirst explores nodes in discovery order. The identifier keeps
	// the historical spelling "breath_first".
	BreadthFirst Strategy = "breath_first"

	// breadthAlias is accepted by ParseStrategy as a synonym of BreadthFirst.
	breadthAlias Strategy = "breadth_first"
)

// Strategies lists the canonical identifiers in a stable order.
func Strategies() []Strategy {
	return []Strategy{BestFirst, DepthFirst, BreadthFirst}
}

// ParseStrategy maps an identifier to its canonical Strategy.
// Unknown identifiers fail with core.ErrConfiguration.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case BestFirst:
		return BestFirst, nil
	case DepthFirst:
		return DepthFirst, nil
	case BreadthFirst, breadthAlias:
		return BreadthFirst, nil
	default:
		return "", fmt.Errorf("%w: unknown search strategy %q", core.ErrConfiguration, s)
	}
}

// String returns the identifier.
func (s Strategy) String() string { return string(s) }

// Frontier is the container of not-yet-explored, not-yet-pruned nodes.
type Frontier[S any] interface {
	// Push inserts one node.
	Push(inst core.Instance[S]) error

	// PushBatch inserts the children of one branch step, given in
	// left-to-right order (see the package doc for the order convention).
	PushBatch(batch []core.Instance[S]) error

	// Pop removes and returns the next node, or ErrEmptyFrontier.
	Pop() (core.Instance[S], error)

	// Len returns the number of pending nodes.
	Len() int

	// IsEmpty reports whether no node is pending.
	IsEmpty() bool

	// Strategy returns the exploration order of this frontier.
	Strategy() Strategy
}
