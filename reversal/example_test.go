package reversal_test

import (
	"fmt"

	"github.com/leliel12/scikitcriteria/agg"
	"github.com/leliel12/scikitcriteria/decision"
	"github.com/leliel12/scikitcriteria/reversal"
)

// ExampleRankInvariantChecker audits the stability of a weighted-product
// ranking of three laptops under small adverse perturbations.
func ExampleRankInvariantChecker() {
	dm, err := decision.New(
		[]string{"thinkpad", "macbook", "zenbook"},
		[]string{"price", "battery", "weight"},
		[][]float64{
			{1200, 9, 1.4},
			{1900, 12, 1.3},
			{900, 7, 1.6},
		},
		[]decision.Objective{decision.Minimize, decision.Maximize, decision.Minimize},
		decision.WithWeights([]float64{3, 2, 1}),
	)
	if err != nil {
		panic(err)
	}

	chk, err := reversal.New(agg.WeightedProduct{},
		reversal.WithRepeats(2),
		reversal.WithSeed(42),
	)
	if err != nil {
		panic(err)
	}

	rc, err := chk.Evaluate(dm)
	if err != nil {
		panic(err)
	}

	fmt.Println(chk)
	fmt.Println(rc)
	// Output:
	// RankInvariantChecker(ranker=WeightedProduct, repeats=2, allow_missing_alternatives=false, last_diff_strategy=median)
	// RanksComparator[Original, M.1, M.2]
}
