package knapsack_test

import "math/rand"

// randomInstance builds a deterministic integer-valued instance of n items.
func randomInstance(seed int64, n int) (float64, []float64, []float64) {
	rng := rand.New(rand.NewSource(seed))
	values := make([]float64, n)
	weights := make([]float64, n)
	total := 0.0
	for i := 0; i < n; i++ {
		values[i] = float64(1 + rng.Intn(50))
		weights[i] = float64(1 + rng.Intn(30))
		total += weights[i]
	}

	return float64(int(total / 2)), values, weights
}

// bruteForce enumerates every subset.
func bruteForce(capacity float64, values, weights []float64) float64 {
	n := len(values)
	best := 0.0
	for mask := 0; mask < 1<<n; mask++ {
		var v, w float64
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				v += values[i]
				w += weights[i]
			}
		}
		if w <= capacity && v > best {
			best = v
		}
	}

	return best
}
