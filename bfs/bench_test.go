package bfs_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/costar/bfs"
	"github.com/katalvlaran/costar/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NodeCount() + g.EdgeCount()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBFS_RandomSparse measures BFS on a sparse random multigraph.
func BenchmarkBFS_RandomSparse(b *testing.B) {
	const V = 5000
	const E = 10000

	rnd := rand.New(rand.NewSource(42))
	g := core.NewGraph(core.WithCapacity(V))
	for i := 0; i < V; i++ {
		_ = g.AddNode(fmt.Sprintf("n%d", i))
	}
	// random edges (may include duplicates, BFS enqueues each node once)
	for k := 0; k < E; k++ {
		g.AddEdge(fmt.Sprintf("n%d", rnd.Intn(V)), fmt.Sprintf("n%d", rnd.Intn(V)))
	}

	b.ReportAllocs()
	b.SetBytes(int64(V + E))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "n0")
	}
}
