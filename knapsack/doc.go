// Package knapsack implements the 0/1 knapsack problem as a branch-and-bound
// collaborator (core.Instance[[]bool], maximisation).
//
// Items are ranked once by value/weight ratio (descending, ties by index).
// A node is a partial selection plus a cursor into that ranking; only items
// at or after the cursor may still be added.
//
// Bounds:
//
//	Upper (optimistic) – greedy fill in ratio order, then the fractional part
//	                     of the first item that does not fit (the LP
//	                     relaxation). Floored when WithIntegral is set.
//	Lower (heuristic)  – greedy fill over every remaining item in ratio
//	                     order, skipping items that do not fit. The resulting
//	                     selection is the node's heuristic solution.
//
// Branching: one child per remaining item that still fits, each committing
// exactly that item and moving the cursor past it. Children are returned in
// ratio order, so every strategy tries the densest item first.
//
// Complexity: O(n log n) setup, O(n) per bound, O(n²) per Branch.
package knapsack
