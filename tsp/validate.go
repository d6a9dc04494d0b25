// Package tsp - input validation and tour helpers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinel errors from types.go.
package tsp

import (
	"fmt"
	"math"
)

// symTol is the structural tolerance for the symmetry check.
const symTol = 1e-12

// validateDist checks shape and values and returns n and whether the matrix
// is symmetric. +Inf is allowed off the diagonal (missing arc).
//
// Complexity: O(n²).
func validateDist(dist [][]float64) (int, bool, error) {
	n := len(dist)
	if n < 2 {
		return 0, false, fmt.Errorf("%w: need at least 2 vertices, got %d", ErrDimensionMismatch, n)
	}
	symmetric := true
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return 0, false, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := dist[i][j]
			if math.IsNaN(x) {
				return 0, false, fmt.Errorf("%w: NaN at (%d,%d)", ErrDimensionMismatch, i, j)
			}
			if x < 0 {
				return 0, false, fmt.Errorf("%w: %v at (%d,%d)", ErrNegativeWeight, x, i, j)
			}
			y := dist[j][i]
			if math.IsInf(x, 0) != math.IsInf(y, 0) || (!math.IsInf(x, 0) && math.Abs(x-y) > symTol) {
				symmetric = false
			}
		}
	}

	return n, symmetric, nil
}

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex in [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrDimensionMismatch
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrDimensionMismatch
	}
	seen := make([]bool, n)
	for _, v := range tour[:n] {
		if v < 0 || v >= n || seen[v] {
			return ErrDimensionMismatch
		}
		seen[v] = true
	}

	return nil
}

// TourCost sums dist along a closed tour. A missing arc yields +Inf.
func TourCost(dist [][]float64, tour []int) (float64, error) {
	if len(tour) < 2 {
		return 0, ErrDimensionMismatch
	}
	var total float64
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		if u < 0 || u >= len(dist) || v < 0 || v >= len(dist[u]) {
			return 0, ErrDimensionMismatch
		}
		total += dist[u][v]
	}

	return total, nil
}
