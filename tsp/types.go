// Package tsp: sentinel errors, bound policies and options.
package tsp

import "errors"

// Sentinel errors returned by New and the tour helpers.
var (
	// ErrNonSquare indicates a distance matrix with ragged or non-square rows.
	ErrNonSquare = errors.New("tsp: distance matrix is not square")

	// ErrDimensionMismatch indicates n < 2, a NaN weight or a malformed tour.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNegativeWeight indicates a negative arc weight.
	ErrNegativeWeight = errors.New("tsp: negative weight")

	// ErrStartOutOfRange indicates a start vertex outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrIncompleteGraph indicates a vertex without any finite outgoing or
	// incoming arc, so no Hamiltonian cycle exists.
	ErrIncompleteGraph = errors.New("tsp: incomplete distance matrix")
)

// BoundAlgo selects the lower-bound policy.
type BoundAlgo int

const (
	// SimpleBound is the degree-1 relaxation.
	SimpleBound BoundAlgo = iota

	// NoBound uses the cost of the partial path only (testing/benchmarking).
	NoBound
)

// Options configures New.
type Options struct {
	// StartVertex is where every tour begins and ends.
	StartVertex int
	// BoundAlgo selects the lower bound.
	BoundAlgo BoundAlgo
	// EnableLocalSearch polishes each heuristic tour with 2-opt
	// (ignored for asymmetric matrices).
	EnableLocalSearch bool
}

// DefaultOptions starts at vertex 0 with the degree-1 bound and no local search.
func DefaultOptions() Options {
	return Options{StartVertex: 0, BoundAlgo: SimpleBound}
}

// Option configures New via functional arguments.
type Option func(*Options)

// WithStart sets the start vertex.
func WithStart(v int) Option {
	return func(o *Options) {
		o.StartVertex = v
	}
}

// WithBound selects the lower-bound policy.
func WithBound(b BoundAlgo) Option {
	return func(o *Options) {
		o.BoundAlgo = b
	}
}

// WithLocalSearch enables the 2-opt polish of heuristic tours.
func WithLocalSearch() Option {
	return func(o *Options) {
		o.EnableLocalSearch = true
	}
}
