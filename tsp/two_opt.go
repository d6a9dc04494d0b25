// Package tsp - 2-opt polish of heuristic tours.
//
// twoOptSuffix performs deterministic first-improvement 2-opt on a closed
// tour while keeping a committed prefix intact, so the polished tour is still
// a completion of the node's path.
//
// Move (symmetric only): reverse segment [i..k], fixed ≤ i < k ≤ n−1.
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d), with a=T[i−1], b=T[i], c=T[k], d=T[k+1].
//
// Complexity: O(n²) candidate checks per pass; O(n) per accepted move.
package tsp

import "math"

// twoOptEps is the strict improvement threshold (accept Δ < −eps).
const twoOptEps = 1e-12

// twoOptSuffix improves tour in place and returns its new cost.
// tour is closed (len == n+1); tour[0:fixed] must not move.
func (p *problem) twoOptSuffix(tour []int, fixed int, cost float64) float64 {
	n := p.n
	if fixed < 1 {
		fixed = 1
	}
	for {
		improved := false
		for i := fixed; i <= n-2 && !improved; i++ {
			for k := i + 1; k <= n-1; k++ {
				a, b, c, d := tour[i-1], tour[i], tour[k], tour[k+1]
				wac, wbd := p.at(a, c), p.at(b, d)
				if math.IsInf(wac, 0) || math.IsInf(wbd, 0) {
					continue
				}
				delta := (wac + wbd) - (p.at(a, b) + p.at(c, d))
				if delta >= -twoOptEps {
					continue
				}
				reverseInPlace(tour, i, k)
				cost += delta
				improved = true

				break
			}
		}
		if !improved {
			return cost
		}
	}
}

// reverseInPlace reverses tour[i..k].
func reverseInPlace(tour []int, i, k int) {
	for ; i < k; i, k = i+1, k-1 {
		tour[i], tour[k] = tour[k], tour[i]
	}
}
