// Package knapsack: sentinel errors and options.
package knapsack

import "errors"

// Sentinel errors returned by New.
var (
	// ErrLengthMismatch indicates values and weights differ in length.
	ErrLengthMismatch = errors.New("knapsack: values and weights differ in length")

	// ErrBadCapacity indicates a negative, NaN or infinite capacity.
	ErrBadCapacity = errors.New("knapsack: capacity must be finite and non-negative")

	// ErrBadWeight indicates a non-positive, NaN or infinite item weight.
	ErrBadWeight = errors.New("knapsack: weights must be finite and positive")

	// ErrBadValue indicates a negative, NaN or infinite item value, or a
	// fractional value under WithIntegral.
	ErrBadValue = errors.New("knapsack: values must be finite and non-negative")
)

// Option configures New.
type Option func(*problem)

// WithIntegral declares that all item values are integers, so the upper
// bound can be floored. New rejects fractional values with ErrBadValue.
func WithIntegral() Option {
	return func(p *problem) {
		p.integral = true
	}
}
