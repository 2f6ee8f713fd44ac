package gravity_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/tetraptych/aceso/decay"
	"github.com/tetraptych/aceso/gravity"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleNewTwoStepFCA
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three neighborhoods, two clinics, travel times in minutes:
//	  neighborhood 1 is 5 min from both clinics;
//	  neighborhood 2 sits on top of clinic 2;
//	  neighborhood 3 is 15 min from everything.
//
// With a 6-minute catchment, clinic 1 serves one neighborhood and clinic 2
// serves two, so the provider-to-population ratios are 1 and 1/2.
func ExampleNewTwoStepFCA() {
	travelTimes := mat.NewDense(3, 2, []float64{
		5.0, 5.0,
		10., 0.0,
		15., 15.,
	})

	model, err := gravity.NewTwoStepFCA(6.0)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	scores, err := model.AccessibilityScores(travelTimes, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(scores)
	// Output:
	// [1.5 0.5 0]
}

// ExampleNewThreeStepFCA runs the same scenario with two catchment bands:
// full weight within 6 minutes, half weight out to 12.
func ExampleNewThreeStepFCA() {
	travelTimes := mat.NewDense(3, 2, []float64{
		5.0, 5.0,
		10., 0.0,
		15., 15.,
	})

	model, err := gravity.NewThreeStepFCA([]decay.Band{
		{Radius: 6, Weight: 1.0},
		{Radius: 12, Weight: 0.5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	scores, err := model.AccessibilityScores(travelTimes, nil, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f %.4f %.4f\n", scores[0], scores[1], scores[2])
	// Output:
	// 1.1667 0.8333 0.0000
}

// ExampleNewModel builds a gravity model from a named kernel, the way a
// configuration layer would: resolve once, score many times.
func ExampleNewModel() {
	fn, err := decay.Resolve("gaussian", decay.Params{"sigma": 10})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	model, err := gravity.NewModel(fn, nil)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	travelTimes := mat.NewDense(2, 1, []float64{
		0,
		10,
	})
	population := []float64{100, 100}
	capacity := []float64{10}

	scores, err := model.AccessibilityScores(travelTimes, population, capacity)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("near=%.5f far=%.5f\n", scores[0], scores[1])
	// Output:
	// near=0.06225 far=0.03775
}
