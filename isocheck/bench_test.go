// Package isocheck_test: benchmarks for the isomorphism search.
//
// Policy:
//   - Groups are built once outside the timer.
//   - D4/Q8 differ in element orders and measure the quick refutation.
//   - Z4×Z4 and Q8×Z2 agree on element orders, so refuting them walks the
//     whole search tree.
//   - Z2×Z4 against a relabelled copy measures the succeeding path.
package isocheck_test

import (
	"testing"

	"github.com/fedimser/GroupEnumerator/families"
	"github.com/fedimser/GroupEnumerator/fingroup"
	"github.com/fedimser/GroupEnumerator/isocheck"
)

// BenchmarkIso_D4_Q8 measures a refuting search (no isomorphism exists).
func BenchmarkIso_D4_Q8(b *testing.B) {
	d4 := must(families.Dihedral(4))
	q8 := must(families.Quaternion())
	c := isocheck.NewChecker(d4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if c.IsIsomorphic(q8) {
			b.Fatal("D4 ≅ Q8")
		}
	}
}

// BenchmarkIso_SameOrders measures a refutation the order counts cannot settle.
func BenchmarkIso_SameOrders(b *testing.B) {
	z2 := must(families.Cyclic(2))
	z4 := must(families.Cyclic(4))
	z4z4 := must(fingroup.MultiplyGroups(z4, z4))
	q8z2 := must(fingroup.MultiplyGroups(must(families.Quaternion()), z2))
	c := isocheck.NewChecker(z4z4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if c.IsIsomorphic(q8z2) {
			b.Fatal("Z4×Z4 ≅ Q8×Z2")
		}
	}
}

// BenchmarkIso_Relabelled measures a succeeding search on order 8.
func BenchmarkIso_Relabelled(b *testing.B) {
	z2z4 := must(fingroup.MultiplyGroups(must(families.Cyclic(2)), must(families.Cyclic(4))))
	h := relabel(z2z4, []int{0, 7, 6, 5, 4, 3, 2, 1})
	c := isocheck.NewChecker(z2z4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !c.IsIsomorphic(h) {
			b.Fatal("relabelled copy not isomorphic")
		}
	}
}

// BenchmarkIso_S4 measures order 24 (S4 against itself).
func BenchmarkIso_S4(b *testing.B) {
	s4 := must(families.Symmetric(4))
	c := isocheck.NewChecker(s4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.IsIsomorphic(s4)
	}
}
