package tsp_test

import (
	"math"
	"math/rand"
)

// triangle has the single optimal cycle 0→1→2→0 of cost 6.
func triangle() [][]float64 {
	return [][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	}
}

// randomDist returns a deterministic n×n matrix with integer weights in
// [1, 50]. Symmetric if sym is set.
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

// bruteForce returns the optimal closed-tour cost from start by enumerating
// every permutation of the remaining vertices.
func bruteForce(d [][]float64, start int) float64 {
	n := len(d)
	rest := make([]int, 0, n-1)
	for v := 0; v < n; v++ {
		if v != start {
			rest = append(rest, v)
		}
	}
	best := math.Inf(1)
	var permute func(k int)
	permute = func(k int) {
		if k == len(rest) {
			cost, cur := 0.0, start
			for _, v := range rest {
				cost += d[cur][v]
				cur = v
			}
			cost += d[cur][start]
			if cost < best {
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
