// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/costar/core"
)

// frame is one pending visit on the explicit stack.
type frame struct {
	id     string
	parent string
	depth  int
	root   bool
}

// walker encapsulates state during DFS.
type walker struct {
	graph *core.Graph
	opts  Options
	res   *Result
	stack []frame
}

// DFS performs depth-first search on g from startID, or over every node when
// WithFullTraversal is given (startID is then ignored).
//
// Neighbors are explored in insertion order; the traversal uses an explicit
// stack so long chains do not deepen the goroutine stack.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if !o.FullTraversal && !g.HasNode(startID) {
		return nil, fmt.Errorf("%w: %q", ErrStartNodeNotFound, startID)
	}

	n := g.NodeCount()
	w := &walker{
		graph: g,
		opts:  o,
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.tree(startID)
	}
	for _, id := range g.Nodes() {
		if w.res.Visited(id) {
			continue
		}
		if err := w.tree(id); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// tree runs one DFS tree rooted at root.
func (w *walker) tree(root string) error {
	w.res.Roots = append(w.res.Roots, root)
	w.stack = append(w.stack[:0], frame{id: root, root: true})

	var buf []string
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.res.Visited(top.id) {
			continue
		}

		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		w.res.Depth[top.id] = top.depth
		if !top.root {
			w.res.Parent[top.id] = top.parent
		}
		w.res.Order = append(w.res.Order, top.id)

		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(top.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for %q: %w", top.id, err)
			}
		}

		buf = buf[:0]
		if err := w.graph.EachNeighbor(top.id, func(to string) bool {
			if !w.res.Visited(to) {
				buf = append(buf, to)
			}

			return true
		}); err != nil {
			return fmt.Errorf("dfs: neighbors of %q: %w", top.id, err)
		}
		// push in reverse so the first neighbor is visited first
		for i := len(buf) - 1; i >= 0; i-- {
			w.stack = append(w.stack, frame{id: buf[i], parent: top.id, depth: top.depth + 1})
		}
	}

	return nil
}
