// Package tsp implements the (asymmetric) travelling-salesman problem as a
// branch-and-bound collaborator (core.Instance[[]int], minimisation).
//
// A node is a simple path that starts at the start vertex. Branching extends
// the path by one unvisited vertex; a path covering every vertex is a leaf
// whose bounds both equal the exact cost of the closed tour.
//
// Bounds:
//
//	Lower (optimistic) – degree-1 relaxation. In a Hamiltonian cycle every
//	                     vertex has out-degree 1 and in-degree 1, so for the
//	                     vertices whose outgoing (incoming) arc is not yet
//	                     fixed the eventual arc costs at least minOut[v]
//	                     (minIn[v]):
//	                       LB = costSoFar + max(Σ minOut, Σ minIn)
//	                     NoBound disables the relaxation (LB = costSoFar).
//	Upper (heuristic)  – nearest-neighbour completion of the path, closed at
//	                     the start. Optionally polished by a 2-opt pass that
//	                     only touches the uncommitted suffix (symmetric
//	                     matrices only). +Inf when no completion exists.
//
// Distances:
//   - dist must be square with n ≥ 2; math.Inf(1) marks a missing arc.
//   - NaN is rejected (ErrDimensionMismatch), negative weights are rejected
//     (ErrNegativeWeight), and a vertex without any finite outgoing or
//     incoming arc makes the instance infeasible (ErrIncompleteGraph).
//
// Branching order: from the last vertex of the path, unvisited vertices are
// tried by ascending arc weight (index tiebreak), so depth-first search finds
// short tours early.
//
// Complexity: O(n²) setup; O(n) per lower bound; O(n²) per upper bound
// (plus O(iter·n²) with local search); O(n²) per Branch.
package tsp
