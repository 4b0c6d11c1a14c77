package engine_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/stepwise/engine"
)

func ExampleRun() {
	resp, err := engine.Run(context.Background(), engine.Request{
		Algorithm: "insertion",
		Input:     "3 1 2",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(resp.Result.(*engine.SortResult).Sorted)
	// Output:
	// [1 2 3]
}
