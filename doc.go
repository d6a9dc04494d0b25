// Package bnb is a generic branch-and-bound engine for discrete
// optimisation.
//
// The engine knows nothing about any particular problem. A problem plugs in
// by implementing core.Instance: it reports its direction (maximise or
// minimise), computes an upper and a lower bound for a node, produces a
// heuristic solution and splits a node into children. The solver keeps the
// best heuristic seen so far (the incumbent), discards every node whose
// optimistic bound cannot beat it, and explores the rest in one of three
// orders.
//
// Packages:
//
//	core/      the Instance contract, bound caching, promise and improvement tests
//	frontier/  best-first, depth-first and breadth-first containers of pending nodes
//	solver/    the search loop, options, hooks, statistics and results
//	knapsack/  0/1 knapsack collaborator (maximisation)
//	tsp/       travelling salesman collaborator (minimisation)
//	config/    settings from YAML files and BNB_* environment variables
//	logging/   slog-backed structured logging
//
// Quick example:
//
//	root, _ := knapsack.New(50, []float64{60, 100, 120}, []float64{10, 20, 30})
//	res, _ := solver.SolveStrategy[[]bool](root, "best_first", solver.Unbounded)
//	fmt.Println(knapsack.Items(res.Solution), res.Value) // [1 2] 220
//
// A run stops when the frontier is empty (the result is optimal) or when
// the branch budget is spent (the result is the best found so far).
//
//	go get github.com/katalvlaran/bnb
package bnb
