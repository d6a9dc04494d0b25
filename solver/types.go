// Package solver: sentinel errors, termination reasons, statistics and results.
package solver

import (
	"errors"
	"time"
)

// Unbounded disables the branch budget.
const Unbounded = -1

// ErrNilRoot is returned when Solve is called with a nil root instance.
var ErrNilRoot = errors.New("solver: root instance is nil")

// ErrHookAborted wraps an error returned by an OnVisit or OnIncumbent hook.
var ErrHookAborted = errors.New("solver: aborted by hook")

// Termination tells why the search loop stopped.
type Termination int

const (
	// Exhausted means the frontier emptied: the incumbent is optimal.
	Exhausted Termination = iota

	// BudgetReached means the branch budget ran out first: best effort only.
	BudgetReached
)

// String returns "exhausted" or "budget_reached".
func (t Termination) String() string {
	if t == BudgetReached {
		return "budget_reached"
	}

	return "exhausted"
}

// Stats are the search counters of one run.
type Stats struct {
	// Branches is the number of branch steps performed.
	Branches int
	// Iterations is the number of nodes popped from the frontier.
	Iterations int
	// Pruned counts popped nodes that failed the promise test, plus nodes
	// that became non-promising after an incumbent update.
	Pruned int
	// Generated counts children returned by Branch.
	Generated int
	// Pushed counts children that passed the promise test and entered the frontier.
	Pushed int
	// IncumbentUpdates counts incumbent replacements.
	IncumbentUpdates int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Result is the outcome of Solve.
type Result[S any] struct {
	// Solution is the incumbent's heuristic solution.
	Solution S
	// Value is the objective value of Solution.
	Value float64
	// Stats holds the search counters.
	Stats Stats
	// Termination tells whether Solution is proven optimal.
	Termination Termination
	// RunID identifies the run in logs.
	RunID string
	// Elapsed is the wall-clock duration of the run.
	Elapsed time.Duration
}

// Optimal reports whether the search ran to exhaustion.
func (r Result[S]) Optimal() bool { return r.Termination == Exhausted }

// Visit describes what happened to one popped node. Node holds the popped
// core.Instance; callers type-assert it to their collaborator type.
type Visit struct {
	Iteration   int     // 0-based index of this iteration
	Node        any     // popped instance
	Promising   bool    // passed the first promise test
	Improved    bool    // replaced the incumbent
	Branched    bool    // was branched
	Children    int     // children returned by Branch
	Pushed      int     // children pushed onto the frontier
	Branches    int     // branch steps so far, including this one
	FrontierLen int     // frontier size after this iteration
	Incumbent   float64 // incumbent value after this iteration
}
