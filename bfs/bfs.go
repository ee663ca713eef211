// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// queueItem pairs a node label with its BFS depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable BFS state.
//
// visited is tracked separately from res.Nodes[*].Distance so that a node
// reachable through several parallel edges is still enqueued exactly once.
type walker struct {
	graph   *core.Graph
	opts    Options
	ctx     context.Context
	queue   []queueItem
	head    int
	visited map[string]bool
	res     *Result
}

// BFS runs breadth-first search on g starting from source,
// applying any number of functional Options.
//
// Every node of g appears in the returned Result: reached nodes with their
// distance and parent, the rest with Unreachable and no parent.
// Returns ErrGraphNil or ErrSourceNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, source string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate source
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}

	// Prepare walker: every node starts unreachable with no parent
	nodes := g.Nodes()
	n := len(nodes)
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Source: source,
			Order:  make([]string, 0, n),
			Nodes:  make(map[string]SearchResult, n),
		},
	}
	for _, id := range nodes {
		w.res.Nodes[id] = SearchResult{Distance: Unreachable}
	}

	// Seed queue with the source (no parent)
	w.discover(source, 0, "", false)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// discover marks id visited at depth d, records its parent, calls OnEnqueue,
// and appends it to the queue.
func (w *walker) discover(id string, d int, parent string, hasParent bool) {
	w.visited[id] = true
	w.res.Nodes[id] = SearchResult{Distance: d, Parent: parent, HasParent: hasParent}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[w.head]
		w.head++

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand discovers every unvisited neighbor of item in adjacency order,
// honoring MaxDepth.
func (w *walker) expand(item queueItem) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}

	return w.graph.EachNeighbor(item.id, func(nbr string) bool {
		if !w.visited[nbr] {
			w.discover(nbr, next, item.id, true)
		}

		return true
	})
}
