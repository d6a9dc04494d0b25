package tsp_test

import (
	"fmt"

	"github.com/katalvlaran/bnb/tsp"
)

// ExampleNew computes the root bounds of a three-city instance: the
// nearest-neighbour tour is the upper bound, the degree-1 relaxation the
// lower bound.
func ExampleNew() {
	root, err := tsp.New(triangle())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	_ = root.InitialSolution()
	_ = root.ComputeLowerBound()

	ub, _ := root.UpperBound()
	lb, _ := root.LowerBound()
	tour, _ := root.HeuristicSolution()
	fmt.Printf("tour=%v upper=%.0f lower=%.0f\n", tour, ub, lb)
	// Output: tour=[0 1 2 0] upper=6 lower=4
}
