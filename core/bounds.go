// File: bounds.go
// Role: embeddable cache for the two optional bounds of an Instance.

package core

import "fmt"

// Bounds caches an optional upper and lower bound. "Unset" is tracked
// separately from the value, so 0 and negative bounds are ordinary values.
//
// Embed Bounds in a collaborator to get UpperBoundSet, LowerBoundSet,
// UpperBound and LowerBound for free; call SetUpper/SetLower from the compute
// methods and Invalidate on every state mutation.
//
// The zero value has both bounds unset.
type Bounds struct {
	upper, lower       float64
	hasUpper, hasLower bool
}

// SetUpper records a freshly computed upper bound.
func (b *Bounds) SetUpper(v float64) {
	b.upper = v
	b.hasUpper = true
}

// SetLower records a freshly computed lower bound.
func (b *Bounds) SetLower(v float64) {
	b.lower = v
	b.hasLower = true
}

// Invalidate forgets both bounds.
func (b *Bounds) Invalidate() {
	b.upper, b.lower = 0, 0
	b.hasUpper, b.hasLower = false, false
}

// UpperBoundSet reports whether an up-to-date upper bound is cached.
func (b *Bounds) UpperBoundSet() bool { return b.hasUpper }

// LowerBoundSet reports whether an up-to-date lower bound is cached.
func (b *Bounds) LowerBoundSet() bool { return b.hasLower }

// UpperBound returns the cached upper bound or ErrPrecondition.
func (b *Bounds) UpperBound() (float64, error) {
	if !b.hasUpper {
		return 0, fmt.Errorf("%w: upper bound", ErrPrecondition)
	}

	return b.upper, nil
}

// LowerBound returns the cached lower bound or ErrPrecondition.
func (b *Bounds) LowerBound() (float64, error) {
	if !b.hasLower {
		return 0, fmt.Errorf("%w: lower bound", ErrPrecondition)
	}

	return b.lower, nil
}
