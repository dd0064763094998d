package retention_test

import (
	"fmt"

	"github.com/cwbudde/algo-chroma/retention"
)

// A C6..C20 alkane standards run.
var ladder = retention.Ladder{
	Times:   []float64{37.30, 35.22, 32.81, 30.50, 28.10, 25.60, 22.90, 20.20, 17.20, 14.10, 10.99, 8.05, 5.51, 2.23, 1.88},
	Carbons: []float64{20, 19, 18, 17, 16, 15, 14, 13, 12, 11, 10, 9, 8, 7, 6},
}

func ExampleLadder_IndexForTime() {
	ri, err := ladder.IndexForTime(11.237)
	if err != nil {
		panic(err)
	}

	fmt.Printf("RI: %.2f\n", ri)

	// Output:
	// RI: 1007.94
}

func ExampleLadder_TimeForIndex() {
	rt, err := ladder.TimeForIndex(1007.942)
	if err != nil {
		panic(err)
	}

	fmt.Printf("RT: %.3f\n", rt)

	// Output:
	// RT: 11.237
}

func ExampleWithWarningFunc() {
	ri, err := ladder.IndexForTime(40.0, retention.WithWarningFunc(func(w retention.RangeWarning) {
		fmt.Println(w)
	}))
	if err != nil {
		panic(err)
	}

	fmt.Printf("RI: %.1f\n", ri)

	// Output:
	// retention: query 40 later than largest reference 37.3, extrapolating
	// RI: 2129.8
}
