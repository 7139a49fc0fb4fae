package perm_test

import (
	"fmt"

	"github.com/fedimser/GroupEnumerator/perm"
)

// ExampleAll lists S3 in lexicographic order.
func ExampleAll() {
	for _, p := range perm.All(3) {
		fmt.Println(p)
	}
	// Output:
	// [0 1 2]
	// [0 2 1]
	// [1 0 2]
	// [1 2 0]
	// [2 0 1]
	// [2 1 0]
}

// ExamplePermutation_Clone shows the clone-before-extend discipline used by search.
func ExamplePermutation_Clone() {
	p := perm.New(3)
	p.Set(0, 0)
	for _, v := range p.PossibleValues() {
		branch := p.Clone()
		branch.Set(1, v)
		fmt.Println(branch, branch.PossibleValues())
	}
	fmt.Println(p)
	// Output:
	// [0 1 _] [2]
	// [0 2 _] [1]
	// [0 _ _]
}
