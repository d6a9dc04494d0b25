package knapsack

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/bnb/core"
)

// boundTol absorbs floating-point noise before flooring an integral bound.
const boundTol = 1e-9

// problem is the immutable data shared by every node of one search tree.
type problem struct {
	capacity float64
	values   []float64
	weights  []float64
	ratio    []float64 // values[i] / weights[i]
	order    []int     // item indices by descending ratio, ties by index
	integral bool
}

// Knapsack is one node of the search tree: a partial selection of items.
type Knapsack struct {
	core.Bounds

	p      *problem
	taken  []bool
	cursor int // position in p.order of the first still-eligible item
	weight float64
	value  float64

	// heuristic selection cached with the lower bound
	heur []bool
}

var _ core.Instance[[]bool] = (*Knapsack)(nil)

// New validates the input and returns the root instance (nothing selected).
//
// Errors: ErrLengthMismatch, ErrBadCapacity, ErrBadWeight, ErrBadValue.
func New(capacity float64, values, weights []float64, opts ...Option) (*Knapsack, error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	if capacity < 0 || math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return nil, fmt.Errorf("%w: %v", ErrBadCapacity, capacity)
	}

	n := len(values)
	p := &problem{
		capacity: capacity,
		values:   make([]float64, n),
		weights:  make([]float64, n),
		ratio:    make([]float64, n),
		order:    make([]int, n),
	}
	for _, opt := range opts {
		opt(p)
	}
	for i := 0; i < n; i++ {
		v, w := values[i], weights[i]
		if !(w > 0) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: item %d weight %v", ErrBadWeight, i, w)
		}
		if !(v >= 0) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: item %d value %v", ErrBadValue, i, v)
		}
		if p.integral && v != math.Trunc(v) {
			return nil, fmt.Errorf("%w: item %d value %v is not an integer", ErrBadValue, i, v)
		}
		p.values[i], p.weights[i] = v, w
		p.ratio[i] = v / w
		p.order[i] = i
	}
	sort.SliceStable(p.order, func(a, b int) bool {
		return p.ratio[p.order[a]] > p.ratio[p.order[b]]
	})

	return &Knapsack{p: p, taken: make([]bool, n)}, nil
}

// Len returns the number of items.
func (k *Knapsack) Len() int { return len(k.p.values) }

// Capacity returns the knapsack capacity.
func (k *Knapsack) Capacity() float64 { return k.p.capacity }

// Value returns the value of the committed items.
func (k *Knapsack) Value() float64 { return k.value }

// Weight returns the weight of the committed items.
func (k *Knapsack) Weight() float64 { return k.weight }

// Taken returns a copy of the committed selection.
func (k *Knapsack) Taken() []bool {
	out := make([]bool, len(k.taken))
	copy(out, k.taken)

	return out
}

// Clone returns an independent node: problem data is shared, the selection
// and cached heuristic are copied. The engine never calls Clone directly.
//
// Complexity: O(n).
func (k *Knapsack) Clone() *Knapsack {
	c := *k
	c.taken = make([]bool, len(k.taken))
	copy(c.taken, k.taken)
	if k.heur != nil {
		c.heur = make([]bool, len(k.heur))
		copy(c.heur, k.heur)
	}

	return &c
}

// include commits the item at ranking position pos if it fits and reports
// whether it did. Committing invalidates both bounds and the heuristic.
func (k *Knapsack) include(pos int) bool {
	item := k.p.order[pos]
	if k.weight+k.p.weights[item] > k.p.capacity {
		return false
	}
	k.taken[item] = true
	k.cursor = pos + 1
	k.value += k.p.values[item]
	k.weight += k.p.weights[item]
	k.Invalidate()
	k.heur = nil

	return true
}

// Direction returns core.Maximize.
func (k *Knapsack) Direction() core.Direction { return core.Maximize }

// ComputeUpperBound sets the fractional (LP-relaxation) bound. O(n).
func (k *Knapsack) ComputeUpperBound() error {
	ub := k.value
	w := k.weight
	for _, item := range k.p.order[k.cursor:] {
		if next := w + k.p.weights[item]; next <= k.p.capacity {
			w = next
			ub += k.p.values[item]

			continue
		}
		ub += (k.p.capacity - w) * k.p.ratio[item]

		break
	}
	if k.p.integral {
		ub = math.Floor(ub + boundTol)
	}
	k.SetUpper(ub)

	return nil
}

// ComputeLowerBound sets the greedy bound and caches its selection. O(n).
func (k *Knapsack) ComputeLowerBound() error {
	heur := make([]bool, len(k.taken))
	copy(heur, k.taken)
	lb, w := k.value, k.weight
	for _, item := range k.p.order[k.cursor:] {
		if next := w + k.p.weights[item]; next <= k.p.capacity {
			w = next
			heur[item] = true
			lb += k.p.values[item]
		}
	}
	k.heur = heur
	k.SetLower(lb)

	return nil
}

// InitialSolution computes the greedy lower bound.
func (k *Knapsack) InitialSolution() error { return k.ComputeLowerBound() }

// HeuristicSolution returns a copy of the greedy selection cached with the
// lower bound, or core.ErrPrecondition if it has not been computed.
func (k *Knapsack) HeuristicSolution() ([]bool, error) {
	if !k.LowerBoundSet() {
		return nil, fmt.Errorf("%w: knapsack heuristic solution", core.ErrPrecondition)
	}
	out := make([]bool, len(k.heur))
	copy(out, k.heur)

	return out, nil
}

// Branch returns one child per remaining item that fits, in ratio order.
func (k *Knapsack) Branch() ([]core.Instance[[]bool], error) {
	n := len(k.p.order)
	children := make([]core.Instance[[]bool], 0, n-k.cursor)
	for pos := k.cursor; pos < n; pos++ {
		if k.weight+k.p.weights[k.p.order[pos]] > k.p.capacity {
			continue
		}
		child := k.Clone()
		child.include(pos)
		children = append(children, child)
	}

	return children, nil
}

// Items returns the indices of the selected items in ascending order.
func Items(sel []bool) []int {
	out := make([]int, 0, len(sel))
	for i, ok := range sel {
		if ok {
			out = append(out, i)
		}
	}

	return out
}
