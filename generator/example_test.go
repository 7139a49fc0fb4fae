package generator_test

import (
	"fmt"

	"github.com/fedimser/GroupEnumerator/generator"
)

// ExampleAllGroups counts the groups of small orders.
func ExampleAllGroups() {
	for n := 1; n <= 8; n++ {
		groups, err := generator.AllGroups(n)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("%d:%d ", n, len(groups))
	}
	fmt.Println()
	// Output:
	// 1:1 2:1 3:1 4:2 5:1 6:2 7:1 8:5
}

// ExampleGenerate prints the order-4 classes with their commutativity.
func ExampleGenerate() {
	res, _ := generator.Generate(4)
	for _, g := range res.Groups {
		fmt.Println(g.Table(), g.IsAbelian())
	}
	fmt.Println(res.Stats.Leaves-res.Stats.Duplicates == len(res.Groups))
	// Output:
	// [[0 1 2 3] [1 0 3 2] [2 3 0 1] [3 2 1 0]] true
	// [[0 1 2 3] [1 0 3 2] [2 3 1 0] [3 2 0 1]] true
	// true
}
