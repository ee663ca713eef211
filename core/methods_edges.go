// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Policy:
//   - Edges are directed; parallel edges and self-loops are always accepted.
//   - Missing endpoints are created through AddNode, never through a side door,
//     so NodeCount stays equal to the number of successful AddNode calls.

package core

import "fmt"

// AddEdge appends to to from's adjacency list and increments the edge counter.
//
// Implementation:
//   - Stage 1: ensure both endpoints exist via AddNode; ErrNodeExists is the
//     expected outcome for present labels and is ignored.
//   - Stage 2: append the destination (duplicates kept) and count the edge.
//
// AddEdge never fails.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) {
	g.ensureNode(from)
	g.ensureNode(to)

	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++
}

// ensureNode creates id unless it is already present.
// The only AddNode failure is ErrNodeExists, which is exactly the case skipped here.
func (g *Graph) ensureNode(id string) {
	if !g.HasNode(id) {
		_ = g.AddNode(id)
	}
}

// HasEdge reports whether at least one from→to edge exists.
// Returns false when from is not a node.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	for _, nbr := range g.adjacency[from] {
		if nbr == to {
			return true
		}
	}

	return false
}

// Neighbors returns a copy of id's adjacency list in insertion order.
// Parallel edges appear once per AddEdge call.
// Complexity: O(deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", id, ErrNodeNotFound)
	}
	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// OutDegree returns the number of outgoing edges of id, parallel edges included.
// Complexity: O(1).
func (g *Graph) OutDegree(id string) (int, error) {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return 0, fmt.Errorf("OutDegree(%q): %w", id, ErrNodeNotFound)
	}

	return len(nbrs), nil
}

// EachNeighbor calls fn for every outgoing edge of id in insertion order,
// without copying the adjacency list. Iteration stops early when fn returns false.
// fn must not mutate the graph.
// Complexity: O(deg(id)).
func (g *Graph) EachNeighbor(id string, fn func(to string) bool) error {
	nbrs, ok := g.adjacency[id]
	if !ok {
		return fmt.Errorf("EachNeighbor(%q): %w", id, ErrNodeNotFound)
	}
	for _, nbr := range nbrs {
		if !fn(nbr) {
			break
		}
	}

	return nil
}
