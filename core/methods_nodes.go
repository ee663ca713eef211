// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns labels sorted lexicographically ascending.

package core

import (
	"fmt"
	"sort"
)

// AddNode inserts id with an empty outgoing adjacency list.
//
// Behavior highlights:
//   - Not idempotent: a second AddNode(id) returns ErrNodeExists and leaves
//     both counters untouched.
//   - Any string is a valid label, including "".
//
// Complexity: O(1).
func (g *Graph) AddNode(id string) error {
	if _, ok := g.adjacency[id]; ok {
		return fmt.Errorf("AddNode(%q): %w", id, ErrNodeExists)
	}
	g.adjacency[id] = []string{}
	g.nodeCount++

	return nil
}

// HasNode reports whether id is a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.adjacency[id]

	return ok
}

// Nodes returns every node label sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []string {
	ids := make([]string, 0, len(g.adjacency))
	for id := range g.adjacency {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
