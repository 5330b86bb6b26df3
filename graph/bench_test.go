package graph_test

import (
	"testing"

	"github.com/katalvlaran/mazebot/generate"
	"github.com/katalvlaran/mazebot/graph"
)

func BenchmarkBuild(b *testing.B) {
	g, err := generate.Perfect(100, generate.WithSeed(7), generate.WithLoops(0.05))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := graph.Build(g); err != nil {
			b.Fatal(err)
		}
	}
}
