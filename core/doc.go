// Package core provides the in-memory directed multigraph used by costar.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Vertices are unique string labels (an actor name, a router ID, ...).
//   - Edges are directed and unlabeled; they are identified only by (from,to).
//   - Parallel edges and self-loops are accepted and counted individually.
//   - Storage is an adjacency list: adjacency[from] = []to, kept in insertion order.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id string) error           // O(1), ErrNodeExists on duplicates
//	HasNode(id string) bool            // O(1)
//
//	// Edge lifecycle
//	AddEdge(from, to string)           // O(1) amortized, auto-creates endpoints
//	HasEdge(from, to string) bool      // O(deg(from))
//
//	// Query
//	Neighbors(id string) ([]string, error)  // insertion order, duplicates kept
//	EachNeighbor(id string, fn func(string) bool) error  // no copy
//	OutDegree(id string) (int, error)
//	Nodes() []string                        // sorted ascending
//
//	// Counters
//	NodeCount() int                    // O(1)
//	EdgeCount() int                    // O(1)
//
// Counters:
//
//	NodeCount and EdgeCount are maintained incrementally and are never
//	recomputed from the adjacency structure. Both are monotonically
//	non-decreasing: there is no removal API.
//
// Concurrency:
//
//	Graph carries no locks. Build it completely on one goroutine, then share it
//	read-only: any number of concurrent readers (HasNode, Neighbors, bfs.BFS, ...)
//	is safe as long as no AddNode/AddEdge runs at the same time.
//
// Errors:
//
//	ErrNodeExists    – AddNode on a label that is already present
//	ErrNodeNotFound  – query on a label that is not present
package core
