package grid_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/cubewalk/grid"
)

// BenchmarkNew measures grid construction on a random 200×150 map.
// Complexity: O(W×H)
func BenchmarkNew(b *testing.B) {
	const h, w = 200, 150
	r := rand.New(rand.NewSource(42))
	alphabet := []byte{' ', '.', '.', '.', '#'}
	lines := make([]string, h)
	for y := range lines {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			sb.WriteByte(alphabet[r.Intn(len(alphabet))])
		}
		lines[y] = sb.String()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.New(lines); err != nil {
			b.Fatal(err)
		}
	}
}
