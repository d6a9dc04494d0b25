package solver_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bnb/core"
	"github.com/katalvlaran/bnb/knapsack"
)

// strategies are the identifiers of every exploration order.
var strategies = []string{"best_first", "depth_first", "breath_first"}

// classic is the capacity-50 knapsack with optimum 220.
func classic(t *testing.T) *knapsack.Knapsack {
	t.Helper()
	k, err := knapsack.New(50, []float64{60, 100, 120}, []float64{10, 20, 30})
	require.NoError(t, err)

	return k
}

// randomKnapsack builds a deterministic instance and returns its optimum.
func randomKnapsack(t *testing.T, seed int64, n int) (*knapsack.Knapsack, float64) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	weights := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		values[i] = float64(5 + rng.Intn(60))
		weights[i] = float64(1 + rng.Intn(25))
		total += weights[i]
	}
	capacity := math.Floor(total * 0.4)
	k, err := knapsack.New(capacity, values, weights)
	require.NoError(t, err)

	// 0/1 knapsack DP over integer weights.
	c := int(capacity)
	dp := make([]float64, c+1)
	for i := 0; i < n; i++ {
		w := int(weights[i])
		for x := c; x >= w; x-- {
			if v := dp[x-w] + values[i]; v > dp[x] {
				dp[x] = v
			}
		}
	}

	return k, dp[c]
}

// tree is a scripted maximisation node: Branch returns the configured
// children, the upper bound is always high and the lower bound is val. It is
// used to observe traversal order without any pruning.
type tree struct {
	core.Bounds
	label    string
	val      float64
	children []*tree
}

func (n *tree) Direction() core.Direction { return core.Maximize }
func (n *tree) ComputeUpperBound() error {
	n.SetUpper(1e9)

	return nil
}
func (n *tree) ComputeLowerBound() error {
	n.SetLower(n.val)

	return nil
}
func (n *tree) InitialSolution() error             { return n.ComputeLowerBound() }
func (n *tree) HeuristicSolution() (string, error) { return n.label, nil }
func (n *tree) Branch() ([]core.Instance[string], error) {
	out := make([]core.Instance[string], 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}

	return out, nil
}

// binaryTree builds a labelled tree of the given depth ("r", "r.0", "r.1", …).
func binaryTree(label string, depth int) *tree {
	n := &tree{label: label}
	if depth == 0 {
		return n
	}
	n.children = []*tree{binaryTree(label+".0", depth-1), binaryTree(label+".1", depth-1)}

	return n
}

// randomDist returns a deterministic n×n matrix with integer weights in
// [1, 50], symmetric if sym is set.
func randomDist(seed int64, n int, sym bool) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if sym && j < i {
				d[i][j] = d[j][i]

				continue
			}
			d[i][j] = float64(1 + rng.Intn(50))
		}
	}

	return d
}

// bruteForceTour returns the optimal closed-tour cost from vertex 0.
func bruteForceTour(d [][]float64) float64 {
	n := len(d)
	rest := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		rest = append(rest, v)
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			cost, cur := 0.0, 0
			for _, v := range rest {
				cost += d[cur][v]
				cur = v
			}
			if cost += d[cur][0]; cost < best {
				best = cost
			}

			return
		}
		for i := k; i < len(rest); i++ {
			rest[k], rest[i] = rest[i], rest[k]
			permute(k + 1)
			rest[k], rest[i] = rest[i], rest[k]
		}
	}
	permute(0)

	return best
}
