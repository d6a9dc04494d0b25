// Package solver_test provides runnable examples of the solve loop.
// Each example runs via "go test -run Example" and checks its output.
package solver_test

import (
	"fmt"

	"github.com/katalvlaran/bnb/knapsack"
	"github.com/katalvlaran/bnb/solver"
	"github.com/katalvlaran/bnb/tsp"
)

// ExampleSolveStrategy solves the classic capacity-50 knapsack to optimality.
func ExampleSolveStrategy() {
	root, err := knapsack.New(50, []float64{60, 100, 120}, []float64{10, 20, 30})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := solver.SolveStrategy[[]bool](root, "best_first", solver.Unbounded)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("items=%v value=%.0f optimal=%v\n", knapsack.Items(res.Solution), res.Value, res.Optimal())
	fmt.Printf("branches=%d iterations=%d\n", res.Stats.Branches, res.Stats.Iterations)
	// Output:
	// items=[1 2] value=220 optimal=true
	// branches=3 iterations=5
}

// ExampleWithMaxBranches shows that a zero budget returns the root's greedy
// solution without branching.
func ExampleWithMaxBranches() {
	root, _ := knapsack.New(50, []float64{60, 100, 120}, []float64{10, 20, 30})

	res, err := solver.Solve[[]bool](root, solver.WithMaxBranches(0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("items=%v value=%.0f termination=%s\n", knapsack.Items(res.Solution), res.Value, res.Termination)
	// Output: items=[0 1] value=160 termination=budget_reached
}

// ExampleSolve_tsp minimises a closed tour over three cities.
func ExampleSolve_tsp() {
	root, err := tsp.New([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := solver.Solve[[]int](root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tour=%v length=%.0f\n", res.Solution, res.Value)
	// Output: tour=[0 1 2 0] length=6
}
