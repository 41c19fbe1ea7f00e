package gen_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gradfuzz/gen"
)

// BenchmarkGenerate measures tree construction from a 1 KiB stream at the
// default bounds; the dominant cost of a harness iteration should stay in
// backend evaluation, not here.
func BenchmarkGenerate(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	data := make([]byte, 1024)
	rng.Read(data)
	cfg := gen.DefaultConfig()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := gen.Generate(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}
