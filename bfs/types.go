// Package bfs provides tunable options, result types and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrSourceNotFound is returned when the source label is not a node.
	ErrSourceNotFound = errors.New("bfs: source node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNodeNotFound is returned by Result queries for labels that were not
	// nodes when the search ran.
	ErrNodeNotFound = errors.New("bfs: node not in search result")

	// ErrNoPath is returned by PathTo for a node the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Unreachable is the Distance of a node the search did not reach.
const Unreachable = -1

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per dequeued node.
	Ctx context.Context

	// OnEnqueue is called when a node is discovered, with its distance.
	OnEnqueue func(id string, depth int)

	// OnVisit is called when a node is dequeued. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, leaves nodes farther than MaxDepth Unreachable.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnVisit:   func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on discovery.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// SearchResult is the per-node record produced by BFS.
//
// Distance is the number of edges on a shortest path from the source, or
// Unreachable. Parent is the predecessor on that path and is meaningful only
// when HasParent is true; the source and unreachable nodes have no parent.
type SearchResult struct {
	Distance  int
	Parent    string
	HasParent bool
}

// Reachable reports whether the search reached the node.
func (s SearchResult) Reachable() bool { return s.Distance != Unreachable }

// ParentOf returns the parent label and whether there is one.
func (s SearchResult) ParentOf() (string, bool) { return s.Parent, s.HasParent }

// Result holds the outcome of a BFS traversal:
//   - Source: the label the search started from.
//   - Order: reached nodes, in visit sequence.
//   - Nodes: one SearchResult for every node of the graph at search time,
//     unreachable ones included.
//
// A Result is never mutated after BFS returns and may be shared between goroutines.
type Result struct {
	Source string
	Order  []string
	Nodes  map[string]SearchResult
}

// Lookup returns the SearchResult for id and whether id was a node.
func (r *Result) Lookup(id string) (SearchResult, bool) {
	sr, ok := r.Nodes[id]

	return sr, ok
}

// Distance returns id's distance from the source. The boolean is false when
// id was not a node; an unknown node and an unreachable one are different answers.
func (r *Result) Distance(id string) (int, bool) {
	sr, ok := r.Nodes[id]
	if !ok {
		return Unreachable, false
	}

	return sr.Distance, true
}

// Reached returns the number of nodes with a finite distance.
func (r *Result) Reached() int { return len(r.Order) }

// MaxDistance returns the largest finite distance in the result.
func (r *Result) MaxDistance() int {
	maxDist := 0
	for _, id := range r.Order {
		if d := r.Nodes[id].Distance; d > maxDist {
			maxDist = d
		}
	}

	return maxDist
}

// PathTo reconstructs the path from the source to dest by following parent links.
// Returns ErrNodeNotFound for unknown labels and ErrNoPath if dest was not reached.
func (r *Result) PathTo(dest string) ([]string, error) {
	sr, ok := r.Nodes[dest]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, dest)
	}
	if !sr.Reachable() {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	// build reversed path; exactly Distance hops back to the source
	path := make([]string, 0, sr.Distance+1)
	for cur := dest; ; {
		path = append(path, cur)
		parent, ok := r.Nodes[cur].ParentOf()
		if !ok {
			break
		}
		cur = parent
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
