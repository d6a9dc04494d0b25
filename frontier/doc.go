// Package frontier holds the pending nodes of a branch-and-bound search.
//
// A Frontier is exploration-order agnostic: the solver only pushes, pops and
// asks whether it is empty. Three interchangeable strategies are provided,
// selected by identifier at construction time:
//
//	best_first   – binary heap ordered by the optimistic bound
//	               (max: highest upper bound first, min: lowest lower bound
//	               first); ties pop in insertion order. Push/Pop O(log n).
//	depth_first  – LIFO stack. Push/Pop O(1).
//	breath_first – FIFO ring queue. Push/Pop amortised O(1).
//	               ("breadth_first" is accepted as an alias.)
//
// Branch-order convention:
//
//	Instance.Branch returns children in the order they should be explored
//	(left to right) and the solver hands the surviving children over in one
//	PushBatch call. The depth-first frontier inserts a batch in reverse so
//	that the first child is popped first; breadth-first keeps batch order;
//	best-first orders by key and falls back to batch order on ties. All three
//	strategies therefore explore siblings left to right.
//
// An unknown identifier fails with core.ErrConfiguration; New never picks a
// default strategy silently.
package frontier
