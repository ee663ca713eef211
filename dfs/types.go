// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS or Components.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the start label is not a node of the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")
)

// Option configures optional behavior of DFS traversal.
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
type Options struct {
	// Ctx allows cancellation; checked once per visited node.
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a node is first visited (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id string) error

	// FullTraversal restarts from every unvisited node in sorted label order,
	// covering disconnected parts of the graph.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hook and
// single-source traversal.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets the Context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id string) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithFullTraversal enables forest traversal over every node.
func WithFullTraversal() Option {
	return func(o *Options) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result struct {
	// Order records nodes in the sequence they were first visited (pre-order).
	Order []string

	// Depth maps each visited node to its depth in its DFS tree.
	Depth map[string]int

	// Parent maps each visited node to the node it was discovered from.
	// Tree roots have no entry.
	Parent map[string]string

	// Roots lists the node each DFS tree started from, in traversal order.
	Roots []string
}

// Visited reports whether id was reached.
func (r *Result) Visited(id string) bool {
	_, ok := r.Depth[id]

	return ok
}
