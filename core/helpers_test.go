package core_test

import (
	"github.com/katalvlaran/bnb/core"
)

// node is a scripted Instance: its bounds are fixed numbers handed out by the
// compute steps, and the number of compute calls is recorded.
type node struct {
	core.Bounds
	dir          core.Direction
	ub, lb       float64
	upperCalls   int
	lowerCalls   int
	solution     string
	children     []core.Instance[string]
	computeError error
}

var _ core.Instance[string] = (*node)(nil)

func (n *node) Direction() core.Direction { return n.dir }

func (n *node) ComputeUpperBound() error {
	n.upperCalls++
	if n.computeError != nil {
		return n.computeError
	}
	n.SetUpper(n.ub)

	return nil
}

func (n *node) ComputeLowerBound() error {
	n.lowerCalls++
	if n.computeError != nil {
		return n.computeError
	}
	n.SetLower(n.lb)

	return nil
}

func (n *node) InitialSolution() error {
	if n.dir == core.Maximize {
		return n.ComputeLowerBound()
	}

	return n.ComputeUpperBound()
}

func (n *node) HeuristicSolution() (string, error) { return n.solution, nil }

func (n *node) Branch() ([]core.Instance[string], error) { return n.children, nil }

// partial embeds Unimplemented and only declares a direction.
type partial struct {
	core.Unimplemented[string]
}

func (partial) Direction() core.Direction { return core.Maximize }

// maxNode returns a maximisation node with the given bounds.
func maxNode(ub, lb float64) *node { return &node{dir: core.Maximize, ub: ub, lb: lb} }

// minNode returns a minimisation node with the given bounds.
func minNode(ub, lb float64) *node { return &node{dir: core.Minimize, ub: ub, lb: lb} }
