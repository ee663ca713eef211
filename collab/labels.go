// SPDX-License-Identifier: MIT
//
// File: labels.go
// Role: EdgeLabels, the (from,to) → group key lookup built next to the graph.
//
// Invariant:
//   - Every edge u→v added by Build has a label for Pair{u,v} and Pair{v,u}.
//     Lookup is still fallible: callers holding a graph from elsewhere get
//     (_, false) instead of a zero value.

package collab

// Pair is an ordered pair of node labels.
type Pair struct {
	From string
	To   string
}

// Reverse returns the pair with its endpoints swapped.
func (p Pair) Reverse() Pair { return Pair{From: p.To, To: p.From} }

// EdgeLabels maps ordered node pairs to the group key that connected them.
// The zero value is not usable; EdgeLabels is created by Build.
type EdgeLabels struct {
	m map[Pair]string
}

func newEdgeLabels() *EdgeLabels {
	return &EdgeLabels{m: make(map[Pair]string)}
}

// Lookup returns the label recorded for from→to and whether one exists.
// Complexity: O(1).
func (l *EdgeLabels) Lookup(from, to string) (string, bool) {
	label, ok := l.m[Pair{From: from, To: to}]

	return label, ok
}

// Len returns the number of ordered pairs with a label.
func (l *EdgeLabels) Len() int { return len(l.m) }

// record stores label for both orderings of p unless p already has one
// (first-seen-wins). It returns the label in force after the call.
func (l *EdgeLabels) record(p Pair, label string) string {
	if existing, ok := l.m[p]; ok {
		return existing
	}
	l.m[p] = label
	l.m[p.Reverse()] = label

	return label
}

// canonical orders the endpoints so both directions share one key.
func (p Pair) canonical() Pair {
	if p.To < p.From {
		return p.Reverse()
	}

	return p
}
