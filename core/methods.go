// File: methods.go
// Role: engine-level operations derived once from the Instance contract.
// Determinism:
//   - Bounds are computed lazily (only when unset) and then re-read from the
//     collaborator's cache; nothing here mutates an incumbent.

package core

import "fmt"

// CheckDirection returns i's direction or ErrNotImplemented when the
// collaborator never declared one.
func CheckDirection[S any](i Instance[S]) (Direction, error) {
	d := i.Direction()
	if !d.Valid() {
		return 0, fmt.Errorf("%w: Direction (got %d)", ErrNotImplemented, int(d))
	}

	return d, nil
}

// EnsureUpper computes i's upper bound unless an up-to-date one is cached.
func EnsureUpper[S any](i Instance[S]) error {
	if i.UpperBoundSet() {
		return nil
	}
	if err := i.ComputeUpperBound(); err != nil {
		return err
	}
	if !i.UpperBoundSet() {
		return fmt.Errorf("%w: ComputeUpperBound left the upper bound unset", ErrPrecondition)
	}

	return nil
}

// EnsureLower computes i's lower bound unless an up-to-date one is cached.
func EnsureLower[S any](i Instance[S]) error {
	if i.LowerBoundSet() {
		return nil
	}
	if err := i.ComputeLowerBound(); err != nil {
		return err
	}
	if !i.LowerBoundSet() {
		return fmt.Errorf("%w: ComputeLowerBound left the lower bound unset", ErrPrecondition)
	}

	return nil
}

// EnsureKey computes the optimistic bound used for pruning and best-first
// ordering: the upper bound when maximising, the lower bound when minimising.
func EnsureKey[S any](i Instance[S]) error {
	d, err := CheckDirection(i)
	if err != nil {
		return err
	}
	if d == Maximize {
		return EnsureUpper(i)
	}

	return EnsureLower(i)
}

// Key returns the optimistic bound of i without computing it.
func Key[S any](i Instance[S]) (float64, error) {
	d, err := CheckDirection(i)
	if err != nil {
		return 0, err
	}
	if d == Maximize {
		return i.UpperBound()
	}

	return i.LowerBound()
}

// HeuristicValue returns the value of i's cached heuristic solution: the lower
// bound when maximising, the upper bound when minimising. It never computes.
func HeuristicValue[S any](i Instance[S]) (float64, error) {
	d, err := CheckDirection(i)
	if err != nil {
		return 0, err
	}
	if d == Maximize {
		return i.LowerBound()
	}

	return i.UpperBound()
}

// Heuristic returns i's cached heuristic solution and its value.
//
// The solution is only read once the bound underlying it is set; otherwise
// ErrPrecondition is returned and HeuristicSolution is never called.
func Heuristic[S any](i Instance[S]) (S, float64, error) {
	var zero S
	v, err := HeuristicValue(i)
	if err != nil {
		return zero, 0, err
	}
	sol, err := i.HeuristicSolution()
	if err != nil {
		return zero, 0, err
	}

	return sol, v, nil
}

// IsPromising reports whether cand could still contain a solution strictly
// better than the heuristic held by inc. It is the single pruning test.
//
//	Maximize: cand.upper > inc.lower  (cand.upper computed if unset)
//	Minimize: cand.lower < inc.upper  (cand.lower computed if unset)
//
// Errors:
//   - ErrNotImplemented for an undeclared direction.
//   - ErrPrecondition if inc's heuristic bound is unset.
//   - Any error returned by the collaborator's compute step.
func IsPromising[S any](cand, inc Instance[S]) (bool, error) {
	d, err := CheckDirection(cand)
	if err != nil {
		return false, err
	}
	var (
		bound, best float64
	)
	if d == Maximize {
		if err = EnsureUpper(cand); err != nil {
			return false, err
		}
		if bound, err = cand.UpperBound(); err != nil {
			return false, err
		}
		if best, err = inc.LowerBound(); err != nil {
			return false, fmt.Errorf("incumbent: %w", err)
		}

		return bound > best, nil
	}

	if err = EnsureLower(cand); err != nil {
		return false, err
	}
	if bound, err = cand.LowerBound(); err != nil {
		return false, err
	}
	if best, err = inc.UpperBound(); err != nil {
		return false, fmt.Errorf("incumbent: %w", err)
	}

	return bound < best, nil
}

// IsBetterThan reports whether cand's heuristic solution strictly improves on
// inc's. It computes cand's heuristic bound if unset.
//
//	Maximize: cand.lower > inc.lower
//	Minimize: cand.upper < inc.upper
func IsBetterThan[S any](cand, inc Instance[S]) (bool, error) {
	d, err := CheckDirection(cand)
	if err != nil {
		return false, err
	}
	var mine, theirs float64
	if d == Maximize {
		if err = EnsureLower(cand); err != nil {
			return false, err
		}
		if mine, err = cand.LowerBound(); err != nil {
			return false, err
		}
		if theirs, err = inc.LowerBound(); err != nil {
			return false, fmt.Errorf("incumbent: %w", err)
		}

		return mine > theirs, nil
	}

	if err = EnsureUpper(cand); err != nil {
		return false, err
	}
	if mine, err = cand.UpperBound(); err != nil {
		return false, err
	}
	if theirs, err = inc.UpperBound(); err != nil {
		return false, fmt.Errorf("incumbent: %w", err)
	}

	return mine < theirs, nil
}

// Less is the best-first ordering: it reports whether a holds potentially
// better solutions than b. Maximisation orders by descending upper bound,
// minimisation by ascending lower bound. Both keys must already be set.
func Less[S any](a, b Instance[S]) (bool, error) {
	d, err := CheckDirection(a)
	if err != nil {
		return false, err
	}
	ka, err := Key(a)
	if err != nil {
		return false, err
	}
	kb, err := Key(b)
	if err != nil {
		return false, err
	}

	return Comparator(d)(ka, kb), nil
}

// Comparator returns the key ordering for direction d: ka ranks before kb
// when it is more optimistic. Unknown directions fall back to ascending.
func Comparator(d Direction) func(ka, kb float64) bool {
	if d == Maximize {
		return func(ka, kb float64) bool { return ka > kb }
	}

	return func(ka, kb float64) bool { return ka < kb }
}
