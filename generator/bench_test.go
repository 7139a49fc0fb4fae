// Package generator_test: benchmarks for the table-completion search.
//
// Policy:
//   - One full enumeration per iteration; no shared state between runs.
//   - Orders chosen to finish quickly while still branching heavily.
package generator_test

import (
	"testing"

	"github.com/fedimser/GroupEnumerator/generator"
)

func benchmarkOrder(b *testing.B, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := generator.AllGroups(n); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkAllGroups_6 measures Z6 and S3.
func BenchmarkAllGroups_6(b *testing.B) { benchmarkOrder(b, 6) }

// BenchmarkAllGroups_8 measures the five groups of order 8.
func BenchmarkAllGroups_8(b *testing.B) { benchmarkOrder(b, 8) }
