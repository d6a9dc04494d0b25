// Package tsp - search-tree nodes for exact branch-and-bound.
//
// Rationale (succinct):
//  1. Strict input shape and invariants are enforced once in New; the distance
//     matrix is prefetched into a dense buffer shared by every node.
//  2. Per-vertex minima (minOut/minIn) and per-vertex neighbour orders are
//     precomputed once and shared as well.
//  3. A node owns only its path, its visited set and the cost so far, so a
//     child costs O(n) to derive.
//
// Governance:
//   - Options.BoundAlgo:
//     SimpleBound → degree-1 relaxation.
//     NoBound     → cost of the partial path only (testing only).
package tsp

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bnb/core"
)

// problem holds the immutable data shared by every node of one tree.
type problem struct {
	n           int
	start       int
	symmetric   bool
	useBound    bool
	localSearch bool

	// Graph data (dense buffer): w[u*n+v]
	w []float64

	minOut []float64 // per-vertex minimal outgoing arc (excluding self)
	minIn  []float64 // per-vertex minimal incoming arc (excluding self)
	order  [][]int   // for each u: v≠u sorted by w[u→v] (index tiebreak)
}

// at is a fast accessor into the dense weight buffer.
func (p *problem) at(u, v int) float64 { return p.w[u*p.n+v] }

// precomputeMinima computes per-vertex minOut/minIn excluding self-loops.
// If any vertex has no finite outgoing or incoming arc to other vertices,
// the instance is infeasible and ErrIncompleteGraph is returned.
func (p *problem) precomputeMinima() error {
	inf := math.Inf(1)
	p.minOut = make([]float64, p.n)
	p.minIn = make([]float64, p.n)
	for v := 0; v < p.n; v++ {
		mo, mi := inf, inf
		for u := 0; u < p.n; u++ {
			if u == v {
				continue
			}
			if c := p.at(v, u); c < mo {
				mo = c
			}
			if c := p.at(u, v); c < mi {
				mi = c
			}
		}
		if math.IsInf(mo, 0) || math.IsInf(mi, 0) {
			return fmt.Errorf("%w: vertex %d has no finite arc", ErrIncompleteGraph, v)
		}
		p.minOut[v] = mo
		p.minIn[v] = mi
	}

	return nil
}

// neighborOrder implements sort.Interface for a row of neighbours ordered by weight.
type neighborOrder struct {
	u   int
	row []int
	p   *problem
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.p.at(no.u, vi), no.p.at(no.u, vj)
	if wi == wj {
		return vi < vj
	}

	return wi < wj
}
func (no *neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// buildNeighborOrder produces, for each u, the list of v≠u sorted by ascending w[u→v]
// (and then by v). Deterministic branching keeps runs reproducible.
func (p *problem) buildNeighborOrder() {
	p.order = make([][]int, p.n)
	for u := 0; u < p.n; u++ {
		row := make([]int, 0, p.n-1)
		for v := 0; v < p.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		no := neighborOrder{u: u, row: row, p: p}
		sort.Sort(&no)
		p.order[u] = no.row
	}
}

// Tour is one node of the search tree: a simple path from the start vertex.
type Tour struct {
	core.Bounds

	p       *problem
	path    []int  // path[0] == start
	visited []bool // vertices on path
	cost    float64

	// closed heuristic tour cached with the upper bound (nil if none exists)
	heur []int
}

var _ core.Instance[[]int] = (*Tour)(nil)

// New validates dist and returns the root node (the path [start]).
//
// Errors: ErrNonSquare, ErrDimensionMismatch, ErrNegativeWeight,
// ErrStartOutOfRange, ErrIncompleteGraph.
func New(dist [][]float64, opts ...Option) (*Tour, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n, symmetric, err := validateDist(dist)
	if err != nil {
		return nil, err
	}
	if cfg.StartVertex < 0 || cfg.StartVertex >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, cfg.StartVertex, n)
	}

	p := &problem{
		n:           n,
		start:       cfg.StartVertex,
		symmetric:   symmetric,
		useBound:    cfg.BoundAlgo != NoBound,
		localSearch: cfg.EnableLocalSearch,
		w:           make([]float64, n*n),
	}
	for i := 0; i < n; i++ {
		copy(p.w[i*n:(i+1)*n], dist[i])
	}
	if err = p.precomputeMinima(); err != nil {
		return nil, err
	}
	p.buildNeighborOrder()

	t := &Tour{
		p:       p,
		path:    make([]int, 1, n),
		visited: make([]bool, n),
	}
	t.path[0] = p.start
	t.visited[p.start] = true

	return t, nil
}

// N returns the number of vertices.
func (t *Tour) N() int { return t.p.n }

// Start returns the start vertex.
func (t *Tour) Start() int { return t.p.start }

// Symmetric reports whether the distance matrix is symmetric.
func (t *Tour) Symmetric() bool { return t.p.symmetric }

// Path returns a copy of the committed path.
func (t *Tour) Path() []int {
	out := make([]int, len(t.path))
	copy(out, t.path)

	return out
}

// Cost returns the cost of the committed path (without closure).
func (t *Tour) Cost() float64 { return t.cost }

// complete reports whether the path covers every vertex.
func (t *Tour) complete() bool { return len(t.path) == t.p.n }

func (t *Tour) last() int { return t.path[len(t.path)-1] }

// Clone returns an independent node sharing the problem data. The engine
// never calls Clone directly.
func (t *Tour) Clone() *Tour {
	c := *t
	c.path = make([]int, len(t.path), t.p.n)
	copy(c.path, t.path)
	c.visited = make([]bool, t.p.n)
	copy(c.visited, t.visited)
	if t.heur != nil {
		c.heur = make([]int, len(t.heur))
		copy(c.heur, t.heur)
	}

	return &c
}

// extend appends v to the path and invalidates bounds and heuristic.
func (t *Tour) extend(v int) {
	t.cost += t.p.at(t.last(), v)
	t.path = append(t.path, v)
	t.visited[v] = true
	t.Invalidate()
	t.heur = nil
}

// Direction returns core.Minimize.
func (t *Tour) Direction() core.Direction { return core.Minimize }

// ComputeLowerBound sets the degree-1 relaxation bound (see package doc).
// For a complete path it is the exact closed-tour cost. O(n).
func (t *Tour) ComputeLowerBound() error {
	p := t.p
	if t.complete() {
		t.SetLower(t.cost + p.at(t.last(), p.start))

		return nil
	}
	if !p.useBound {
		t.SetLower(t.cost)

		return nil
	}

	// Outgoing is fixed for all visited vertices except 'last';
	// incoming is fixed for all visited vertices except 'start'.
	var sumOut, sumIn float64
	last := t.last()
	for v := 0; v < p.n; v++ {
		if t.visited[v] {
			if v == last {
				sumOut += p.minOut[v]
			}
			if v == p.start {
				sumIn += p.minIn[v]
			}

			continue
		}
		sumOut += p.minOut[v]
		sumIn += p.minIn[v]
	}
	t.SetLower(t.cost + math.Max(sumOut, sumIn))

	return nil
}

// ComputeUpperBound completes the path greedily (nearest unvisited vertex,
// index tiebreak), closes it at the start and caches that tour as the
// heuristic. Without any completion the bound is +Inf and no tour is cached.
func (t *Tour) ComputeUpperBound() error {
	p := t.p
	inf := math.Inf(1)

	tour := make([]int, len(t.path), p.n+1)
	copy(tour, t.path)
	seen := make([]bool, p.n)
	copy(seen, t.visited)
	total := t.cost
	cur := t.last()

	for len(tour) < p.n {
		next := -1
		for _, v := range p.order[cur] {
			if !seen[v] && !math.IsInf(p.at(cur, v), 0) {
				next = v

				break
			}
		}
		if next < 0 {
			t.heur = nil
			t.SetUpper(inf)

			return nil
		}
		total += p.at(cur, next)
		seen[next] = true
		tour = append(tour, next)
		cur = next
	}

	closing := p.at(cur, p.start)
	if math.IsInf(closing, 0) {
		t.heur = nil
		t.SetUpper(inf)

		return nil
	}
	total += closing
	tour = append(tour, p.start)

	if p.localSearch && p.symmetric && p.n >= 4 {
		total = p.twoOptSuffix(tour, len(t.path), total)
	}
	t.heur = tour
	t.SetUpper(total)

	return nil
}

// InitialSolution computes the greedy upper bound.
func (t *Tour) InitialSolution() error { return t.ComputeUpperBound() }

// HeuristicSolution returns a copy of the closed tour cached with the upper
// bound. It is nil when no completion exists (upper bound +Inf).
func (t *Tour) HeuristicSolution() ([]int, error) {
	if !t.UpperBoundSet() {
		return nil, fmt.Errorf("%w: tsp heuristic tour", core.ErrPrecondition)
	}
	if t.heur == nil {
		return nil, nil
	}
	out := make([]int, len(t.heur))
	copy(out, t.heur)

	return out, nil
}

// Branch extends the path by every unvisited vertex reachable from its last
// vertex, nearest first. A complete path has no children.
func (t *Tour) Branch() ([]core.Instance[[]int], error) {
	if t.complete() {
		return nil, nil
	}
	last := t.last()
	children := make([]core.Instance[[]int], 0, t.p.n-len(t.path))
	for _, v := range t.p.order[last] {
		if t.visited[v] || math.IsInf(t.p.at(last, v), 0) {
			continue
		}
		child := t.Clone()
		child.extend(v)
		children = append(children, child)
	}

	return children, nil
}
