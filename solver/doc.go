// Package solver runs the branch-and-bound loop over a core.Instance tree.
//
// Algorithm (sequential, synchronous):
//
//  1. root.InitialSolution(); incumbent := root.
//  2. Build the frontier for the chosen strategy, seeded with root.
//  3. While the frontier is non-empty and the branch budget is not spent:
//     a. cand := pop.
//     b. If cand is promising against the incumbent:
//     – replace the incumbent if cand's heuristic is strictly better;
//     – re-test cand against the (possibly new) incumbent and, only if it
//     is still promising, branch it and push every child that is itself
//     promising. That counts as one branch.
//     c. Count one iteration.
//  4. Return the incumbent's heuristic solution and value with statistics.
//
// The second promise test reuses cand's cached bound: cand's state does not
// change between the two tests, so its bound cannot have gone stale. Only an
// unset bound is ever computed.
//
// Termination:
//
//	Exhausted     – the frontier emptied; the result is optimal provided the
//	                collaborator's bounds are correct.
//	BudgetReached – the branch budget ran out first; the result is the best
//	                incumbent found so far and may be suboptimal.
//
// Reaching the budget is not an error. Errors are reserved for contract
// violations (core.ErrNotImplemented, core.ErrPrecondition), bad settings
// (core.ErrConfiguration, always raised before any search work), collaborator
// failures and hook errors.
//
// Options:
//
//	WithStrategy(s)        – best_first (default), depth_first, breath_first
//	WithMaxBranches(n)     – n ≥ 0 caps the number of branch steps; -1 (default) disables the cap
//	WithLogger(l)          – structured logging (default: discard)
//	WithOnVisit(fn)        – called once per iteration
//	WithOnIncumbent(fn)    – called on every incumbent replacement
//	WithSettings(s)        – strategy, budget and logger from config.Settings
package solver
