// Package core: sentinel errors and the Direction enum.
package core

import "errors"

// Sentinel errors shared by the engine and its collaborators.
var (
	// ErrNotImplemented indicates a collaborator failed to supply a required
	// operation of the Instance contract.
	ErrNotImplemented = errors.New("core: contract operation not implemented")

	// ErrPrecondition indicates that a bound or heuristic solution was read
	// before the corresponding compute step ran.
	ErrPrecondition = errors.New("core: bound read before it was computed")

	// ErrConfiguration indicates an unrecognised search strategy or an
	// invalid solver setting. It is always raised before any search work.
	ErrConfiguration = errors.New("core: invalid configuration")
)

// Direction is the optimisation sense of a problem. It is fixed per problem
// and never mutated by the engine.
//
// The zero value is invalid: a collaborator that never declared
// its direction is reported as ErrNotImplemented.
type Direction int

const (
	// Maximize marks a maximisation problem.
	Maximize Direction = iota + 1

	// Minimize marks a minimisation problem.
	Minimize
)

// String returns "maximize", "minimize" or "unknown".
func (d Direction) String() string {
	switch d {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Valid reports whether d is Maximize or Minimize.
func (d Direction) Valid() bool { return d == Maximize || d == Minimize }
