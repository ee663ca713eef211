// Package dfs implements depth-first traversal and connected components on
// core.Graph.
//
// What:
//
//   - DFS(g, startID, opts...): pre-order traversal from one node, or over
//     the whole graph with WithFullTraversal.
//   - Components(g): node sets of each DFS tree of a full traversal, which on
//     a collaboration graph (always symmetric) are its connected components.
//
// Options:
//
//   - WithContext(ctx)     cancellation, checked once per visited node.
//   - WithOnVisit(fn)      pre-order hook; an error aborts traversal.
//   - WithFullTraversal()  restart from every unvisited node in label order.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V + E) for the explicit stack and result maps.
//
// Errors:
//
//   - ErrGraphNil           graph pointer is nil.
//   - ErrStartNodeNotFound  start label not in graph.
//   - context.Canceled      traversal canceled via context.
//   - hook errors           propagated from OnVisit.
package dfs
