// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a source node.
//   - Returns a Result containing:
//   - Source: the start label
//   - Order: visit sequence of reached nodes
//   - Nodes: node → SearchResult{Distance, Parent, HasParent} for EVERY node
//     of the graph; unreachable nodes carry Distance == Unreachable and no parent.
//   - Hooks: OnEnqueue (on discovery) and OnVisit (on dequeue; may abort).
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Visited set
//
//	Discovery is tracked by a dedicated visited set rather than by "distance
//	already finite". Parallel edges u→v therefore never enqueue v twice.
//
// Unknown source
//
//	BFS on a label that is not a node returns ErrSourceNotFound. It never
//	fabricates an all-unreachable result.
//
// Determinism
//
//	Neighbors are expanded in adjacency insertion order, so Order, distances
//	and parents are fully reproducible for a graph built in a fixed order.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V log V + E)   (sorted node initialisation, each edge scanned once)
//   - Memory: O(V)             (queue, visited set, Nodes map)
//
// Concurrency
//
//	BFS only reads the graph and allocates a fresh Result per call, so
//	concurrent searches over a graph that is no longer being mutated are safe.
//
// Usage
//
//	res, err := bfs.BFS(g, "Kevin Bacon")
//	if err != nil {
//	    // ErrGraphNil, ErrSourceNotFound, ErrOptionViolation, ctx.Err() or hook errors
//	}
//	d, known := res.Distance("Tom Hanks")
//	path, err := res.PathTo("Tom Hanks") // ErrNoPath / ErrNodeNotFound
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrSourceNotFound    if the source node does not exist.
//   - ErrOptionViolation   if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
