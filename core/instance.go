// File: instance.go
// Role: the Instance contract and the embeddable Unimplemented stub.

package core

import "fmt"

// Instance is one node of the branch-and-bound search tree. S is the type of
// a concrete, feasible solution (e.g. []bool for a knapsack selection).
//
// Contract:
//   - Direction is constant for the whole tree.
//   - ComputeUpperBound / ComputeLowerBound are side-effecting. The bound that
//     carries a feasible solution for the problem's direction (lower for
//     Maximize, upper for Minimize) must also cache that solution.
//   - UpperBoundSet / LowerBoundSet report whether the compute step ran since
//     the last state mutation. Any mutation must invalidate both bounds and
//     the cached heuristic.
//   - UpperBound / LowerBound fail with ErrPrecondition when unset.
//   - InitialSolution produces some feasible (possibly poor) solution, i.e.
//     it leaves the direction-appropriate bound set.
//   - HeuristicSolution returns the solution cached with that bound.
//   - Branch returns independent children, ordered left to right (the order
//     in which they should be explored). Ownership passes to the caller.
type Instance[S any] interface {
	Direction() Direction

	ComputeUpperBound() error
	ComputeLowerBound() error

	UpperBoundSet() bool
	LowerBoundSet() bool

	UpperBound() (float64, error)
	LowerBound() (float64, error)

	InitialSolution() error
	HeuristicSolution() (S, error)

	Branch() ([]Instance[S], error)
}

// Unimplemented can be embedded by a collaborator under construction. Every
// method fails with ErrNotImplemented naming the missing operation, and the
// zero Direction it reports is rejected by the engine.
type Unimplemented[S any] struct{}

func notImplemented(op string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, op)
}

// Direction returns the invalid zero Direction.
func (Unimplemented[S]) Direction() Direction { return 0 }

// ComputeUpperBound fails with ErrNotImplemented.
func (Unimplemented[S]) ComputeUpperBound() error { return notImplemented("ComputeUpperBound") }

// ComputeLowerBound fails with ErrNotImplemented.
func (Unimplemented[S]) ComputeLowerBound() error { return notImplemented("ComputeLowerBound") }

// UpperBoundSet always reports false.
func (Unimplemented[S]) UpperBoundSet() bool { return false }

// LowerBoundSet always reports false.
func (Unimplemented[S]) LowerBoundSet() bool { return false }

// UpperBound fails with ErrNotImplemented.
func (Unimplemented[S]) UpperBound() (float64, error) { return 0, notImplemented("UpperBound") }

// LowerBound fails with ErrNotImplemented.
func (Unimplemented[S]) LowerBound() (float64, error) { return 0, notImplemented("LowerBound") }

// InitialSolution fails with ErrNotImplemented.
func (Unimplemented[S]) InitialSolution() error { return notImplemented("InitialSolution") }

// HeuristicSolution fails with ErrNotImplemented.
func (Unimplemented[S]) HeuristicSolution() (S, error) {
	var zero S

	return zero, notImplemented("HeuristicSolution")
}

// Branch fails with ErrNotImplemented.
func (Unimplemented[S]) Branch() ([]Instance[S], error) { return nil, notImplemented("Branch") }
