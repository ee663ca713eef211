package dfs_test

import (
	"testing"

	"github.com/katalvlaran/costar/dfs"
)

// BenchmarkDFS_Chain10000 measures DFS over a 10,000 node symmetric chain.
func BenchmarkDFS_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "N0")
	}
}

func BenchmarkComponents_Chain10000(b *testing.B) {
	g := buildChain(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Components(g)
	}
}
