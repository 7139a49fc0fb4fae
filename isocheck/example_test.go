package isocheck_test

import (
	"fmt"

	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

// ExampleAreIsomorphic tells the two groups of order 4 apart.
func ExampleAreIsomorphic() {
	z2, _ := families.Cyclic(2)
	z4, _ := families.Cyclic(4)
	v4, _ := fingroup.MultiplyGroups(z2, z2)
	d2, _ := families.Dihedral(2)

	fmt.Println(isocheck.AreIsomorphic(v4, d2))
	fmt.Println(isocheck.AreIsomorphic(v4, z4))
	// Output:
	// true
	// false
}

// ExampleIsomorphism prints the witness Z2×Z3 → Z6.
func ExampleIsomorphism() {
	z2, _ := families.Cyclic(2)
	z3, _ := families.Cyclic(3)
	z6, _ := families.Cyclic(6)
	z2z3, _ := fingroup.MultiplyGroups(z2, z3)

	p, ok := isocheck.Isomorphism(z2z3, z6)
	fmt.Println(ok, p.Get(0))
	// Output:
	// true 0
}
