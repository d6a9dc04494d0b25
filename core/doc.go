// Package core defines the problem contract every branch-and-bound
// collaborator implements, together with the small set of engine-level
// operations derived from it once (promise test, improvement test, best-first
// ordering).
//
// A problem is expressed as a tree of Instance[S] values. Each instance is a
// node of the search tree: it can compute its own upper and lower bounds,
// report a feasible heuristic solution of type S, and branch into children
// that represent mutually exclusive extensions of its partial solution.
//
// Direction:
//
//	– Maximize: the upper bound is the optimistic bound (used for pruning and
//	  ordering); the lower bound is the value of a feasible solution and
//	  carries the heuristic solution.
//	– Minimize: symmetric; the lower bound is optimistic, the upper bound
//	  carries the heuristic solution.
//
// Building blocks for collaborators:
//
//	– Bounds:           embeddable cache for the two optional bounds.
//	                    "Unset" is a state distinct from every number.
//	– Unimplemented[S]: embeddable stub; every method fails with
//	                    ErrNotImplemented so partial collaborators fail loudly.
//
// Derived operations (never reimplemented per problem):
//
//	IsPromising(cand, inc)  – can cand still beat inc? (the single pruning test)
//	IsBetterThan(cand, inc) – is cand's heuristic strictly better than inc's?
//	Less(a, b)              – best-first ordering (max: higher upper first,
//	                          min: lower lower-bound first)
//	HeuristicValue(i)       – lower bound (max) or upper bound (min)
//	Heuristic(i)            – solution + value, guarded by the bound state
//
// Errors (sentinel, match with errors.Is):
//
//	ErrNotImplemented – a collaborator did not supply a required operation.
//	ErrPrecondition   – a bound or heuristic was read before it was computed.
//	ErrConfiguration  – an unrecognised strategy or invalid solver option.
package core
