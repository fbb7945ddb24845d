package wordsearch_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/katas/wordsearch"
)

// BenchmarkFind_Miss measures a worst-case miss: a 12×12 grid of 'A' with a
// word that ends in a rune absent from the grid, so every branch is explored
// until the depth bound.
func BenchmarkFind_Miss(b *testing.B) {
	rows := make([]string, 12)
	for i := range rows {
		rows[i] = strings.Repeat("A", 12)
	}
	g, err := wordsearch.NewGrid(rows)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}
	word := strings.Repeat("A", 5) + "B"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Contains(word)
	}
}

// BenchmarkFind_Hit measures the snaking puzzle hit path.
func BenchmarkFind_Hit(b *testing.B) {
	g, err := wordsearch.NewGrid([]string{"ANGULAR", "REDNCAE", "RFIDTCL", "AGNEGSA", "YTIRTSP"})
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Contains("UNDEFINED")
	}
}
