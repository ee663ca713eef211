// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, construction options and sentinel errors.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeExists indicates AddNode was called with a label already in the graph.
	ErrNodeExists = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the node table for an expected number of labels.
// Non-positive hints are ignored.
func WithCapacity(nodes int) GraphOption {
	return func(g *Graph) {
		if nodes > 0 {
			g.adjacency = make(map[string][]string, nodes)
		}
	}
}

// Graph is a directed multigraph over string labels stored as an adjacency list.
//
// adjacency[from] holds every destination appended by AddEdge(from, ·) in call
// order, duplicates included. A label is a node iff it is a key of adjacency.
// nodeCount and edgeCount are maintained by AddNode and AddEdge only.
type Graph struct {
	adjacency map[string][]string

	nodeCount int
	edgeCount int
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{adjacency: make(map[string][]string)}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NodeCount returns the number of nodes inserted so far.
// Complexity: O(1).
func (g *Graph) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of AddEdge calls made so far.
// Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }
