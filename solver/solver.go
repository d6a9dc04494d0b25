package solver

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/bnb/core"
	"github.com/katalvlaran/bnb/frontier"
)

// Solve explores the tree rooted at root and returns the best solution found.
//
// Preconditions and validation (in order, before any search work):
//  1. Options must be valid (core.ErrConfiguration).
//  2. The strategy must be known (core.ErrConfiguration).
//  3. root must be non-nil (ErrNilRoot).
//  4. root must declare a direction (core.ErrNotImplemented).
//
// Errors raised by the collaborator or by hooks abort the run and are
// returned wrapped; errors.Is matches the original sentinel.
//
// Complexity: one frontier push/pop per surviving node (O(log n) best-first,
// O(1) otherwise) plus the collaborator's bound and branch costs.
func Solve[S any](root core.Instance[S], opts ...Option) (Result[S], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result[S]{}, cfg.err
	}

	strategy, err := frontier.ParseStrategy(string(cfg.Strategy))
	if err != nil {
		return Result[S]{}, err
	}
	cfg.Strategy = strategy

	if root == nil {
		return Result[S]{}, ErrNilRoot
	}
	dir, err := core.CheckDirection(root)
	if err != nil {
		return Result[S]{}, err
	}

	r := &runner[S]{
		opts:  cfg,
		dir:   dir,
		runID: newRunID(),
	}

	return r.run(root)
}

// SolveStrategy is Solve with the strategy given by identifier and a branch
// budget (Unbounded for none).
func SolveStrategy[S any](root core.Instance[S], strategy string, maxBranches int) (Result[S], error) {
	return Solve(root, WithStrategy(frontier.Strategy(strategy)), WithMaxBranches(maxBranches))
}

// newRunID prefers time-ordered UUIDv7 ids and falls back to v4.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}

	return id.String()
}

// runner holds the mutable state of a single solve. The incumbent is only
// ever replaced by reference here.
type runner[S any] struct {
	opts  Options
	dir   core.Direction
	runID string

	incumbent core.Instance[S]
	front     frontier.Frontier[S]
	stats     Stats
}

// budgetLeft reports whether another branch step is allowed.
func (r *runner[S]) budgetLeft() bool {
	return r.opts.MaxBranches == Unbounded || r.stats.Branches < r.opts.MaxBranches
}

func (r *runner[S]) run(root core.Instance[S]) (Result[S], error) {
	start := time.Now()
	log := r.opts.Logger
	log.Info("solve started",
		"run_id", r.runID,
		"strategy", r.opts.Strategy.String(),
		"max_branches", r.opts.MaxBranches,
		"direction", r.dir.String(),
	)

	res, err := r.search(root)
	res.RunID = r.runID
	res.Elapsed = time.Since(start)
	if err != nil {
		log.Error("solve aborted", "run_id", r.runID, "error", err, "iterations", r.stats.Iterations)

		return res, err
	}

	attrs := []any{
		"run_id", r.runID,
		"value", res.Value,
		"termination", res.Termination.String(),
		"branches", res.Stats.Branches,
		"iterations", res.Stats.Iterations,
		"pruned", res.Stats.Pruned,
		"max_frontier", res.Stats.MaxFrontier,
		"elapsed", res.Elapsed,
	}
	if res.Termination == BudgetReached {
		log.Warn("branch budget reached; result may be suboptimal", attrs...)
	} else {
		log.Info("solve finished", attrs...)
	}

	return res, nil
}

// search implements the loop described in the package documentation.
func (r *runner[S]) search(root core.Instance[S]) (Result[S], error) {
	if err := root.InitialSolution(); err != nil {
		return Result[S]{}, fmt.Errorf("solver: initial solution: %w", err)
	}
	if _, err := core.HeuristicValue(root); err != nil {
		return Result[S]{}, fmt.Errorf("solver: initial solution left no heuristic: %w", err)
	}
	r.incumbent = root

	front, err := frontier.New(r.opts.Strategy, root)
	if err != nil {
		return Result[S]{}, err
	}
	r.front = front
	r.stats.MaxFrontier = front.Len()

	for !r.front.IsEmpty() && r.budgetLeft() {
		if err = r.step(); err != nil {
			return Result[S]{Stats: r.stats}, err
		}
	}

	term := Exhausted
	if !r.front.IsEmpty() {
		term = BudgetReached
	}

	sol, val, err := core.Heuristic(r.incumbent)
	if err != nil {
		return Result[S]{Stats: r.stats}, fmt.Errorf("solver: read incumbent: %w", err)
	}

	return Result[S]{
		Solution:    sol,
		Value:       val,
		Stats:       r.stats,
		Termination: term,
	}, nil
}

// step pops one node and prunes, accepts and/or branches it.
func (r *runner[S]) step() error {
	iter := r.stats.Iterations
	cand, err := r.front.Pop()
	if err != nil {
		return err
	}
	v := Visit{Iteration: iter, Node: cand}

	if v.Promising, err = core.IsPromising(cand, r.incumbent); err != nil {
		return fmt.Errorf("solver: iteration %d: promise test: %w", iter, err)
	}
	if !v.Promising {
		r.stats.Pruned++
	} else {
		if err = r.accept(cand, &v); err != nil {
			return err
		}
		if err = r.branch(cand, &v); err != nil {
			return err
		}
	}

	r.stats.Iterations++
	v.Branches = r.stats.Branches
	v.FrontierLen = r.front.Len()
	if v.Incumbent, err = core.HeuristicValue(r.incumbent); err != nil {
		return fmt.Errorf("solver: iteration %d: %w", iter, err)
	}
	if err = r.opts.OnVisit(v); err != nil {
		return fmt.Errorf("%w: OnVisit: %w", ErrHookAborted, err)
	}

	return nil
}

// accept makes cand the incumbent if its heuristic is strictly better.
func (r *runner[S]) accept(cand core.Instance[S], v *Visit) error {
	better, err := core.IsBetterThan(cand, r.incumbent)
	if err != nil {
		return fmt.Errorf("solver: iteration %d: improvement test: %w", v.Iteration, err)
	}
	if !better {
		return nil
	}

	r.incumbent = cand
	r.stats.IncumbentUpdates++
	v.Improved = true

	val, err := core.HeuristicValue(cand)
	if err != nil {
		return fmt.Errorf("solver: iteration %d: %w", v.Iteration, err)
	}
	r.opts.Logger.Debug("incumbent improved", "run_id", r.runID, "iteration", v.Iteration, "value", val)

	snapshot := *v
	snapshot.Incumbent = val
	snapshot.Branches = r.stats.Branches
	snapshot.FrontierLen = r.front.Len()
	if err = r.opts.OnIncumbent(snapshot); err != nil {
		return fmt.Errorf("%w: OnIncumbent: %w", ErrHookAborted, err)
	}

	return nil
}

// branch re-tests cand against the current incumbent and, if it is still
// promising, pushes its promising children in one batch.
func (r *runner[S]) branch(cand core.Instance[S], v *Visit) error {
	still, err := core.IsPromising(cand, r.incumbent)
	if err != nil {
		return fmt.Errorf("solver: iteration %d: promise re-test: %w", v.Iteration, err)
	}
	if !still {
		r.stats.Pruned++

		return nil
	}

	children, err := cand.Branch()
	if err != nil {
		return fmt.Errorf("solver: iteration %d: branch: %w", v.Iteration, err)
	}
	r.stats.Generated += len(children)
	v.Children = len(children)

	survivors := make([]core.Instance[S], 0, len(children))
	for i, child := range children {
		if child == nil {
			return fmt.Errorf("solver: iteration %d: child %d: %w", v.Iteration, i, frontier.ErrNilInstance)
		}
		ok, perr := core.IsPromising(child, r.incumbent)
		if perr != nil {
			return fmt.Errorf("solver: iteration %d: child promise test: %w", v.Iteration, perr)
		}
		if ok {
			survivors = append(survivors, child)
		}
	}
	if err = r.front.PushBatch(survivors); err != nil {
		return fmt.Errorf("solver: iteration %d: push: %w", v.Iteration, err)
	}

	r.stats.Branches++
	r.stats.Pushed += len(survivors)
	if n := r.front.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
	v.Branched = true
	v.Pushed = len(survivors)

	return nil
}
