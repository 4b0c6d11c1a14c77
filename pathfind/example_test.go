package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/stepwise/gridgraph"
	"github.com/katalvlaran/stepwise/pathfind"
)

func ExampleFind() {
	gg, _ := gridgraph.Parse([]string{
		"S.#",
		"..#",
		"#.G",
	}, gridgraph.Conn4)

	res, err := pathfind.Find(gg, pathfind.BFS)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Found, res.Cost, res.Path)
	// Output:
	// true 4 [0,0 1,0 1,1 1,2 2,2]
}
