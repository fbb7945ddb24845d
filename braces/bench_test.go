package braces_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/katas/braces"
)

// BenchmarkExpand_Product10 expands ten independent binary groups (1024 results).
// Complexity: O(R·L) with R = 2^10 + intermediate candidates.
func BenchmarkExpand_Product10(b *testing.B) {
	in := strings.Repeat("{a,b}", 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := braces.ExpandAll(in); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkExpand_Nested measures deeply nested optional suffixes.
func BenchmarkExpand_Nested(b *testing.B) {
	in := strings.Repeat("{x,", 12) + "y" + strings.Repeat("}", 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := braces.ExpandAll(in); err != nil {
			b.Fatal(err)
		}
	}
}
