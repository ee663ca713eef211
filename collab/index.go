// SPDX-License-Identifier: MIT
//
// File: index.go
// Role: Build a collaboration Graph and its EdgeLabels from grouped membership records.
//
// Contract:
//   - Groups are processed in slice order; members in listing order.
//   - For each ordered pair (m, o) of a group with m != o (compared by value),
//     add edge m→o and label both orderings with the group key.
//   - A group of k distinct members yields k·(k−1) edges. Repeated listings of
//     the same member are not deduplicated and yield repeated edges.
//   - Groups with fewer than two distinct members add neither edges nor nodes.
//   - Label conflicts are resolved first-seen-wins.
//   - Input is validated in full before the graph is touched.

package collab

import (
	"errors"
	"fmt"
	"sort"

	"github.com/katalvlaran/costar/core"
)

// Sentinel errors for index construction.
var (
	// ErrEmptyGroupKey indicates a group without a key (e.g. an untitled movie).
	ErrEmptyGroupKey = errors.New("collab: empty group key")

	// ErrEmptyMember indicates a member label that is the empty string.
	ErrEmptyMember = errors.New("collab: empty member label")
)

// Group is one labeled collection of co-occurring members, e.g. a movie and its cast.
type Group struct {
	Key     string
	Members []string
}

// GroupsFromMap converts a key → members map into groups ordered by key,
// so that Build over map input is deterministic.
func GroupsFromMap(m map[string][]string) []Group {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	groups := make([]Group, 0, len(keys))
	for _, k := range keys {
		groups = append(groups, Group{Key: k, Members: m[k]})
	}

	return groups
}

// Index owns a collaboration graph together with the labels of its edges.
// It is immutable once Build returns.
type Index struct {
	graph     *core.Graph
	labels    *EdgeLabels
	groups    int
	members   int
	conflicts int
}

// Build creates an Index from groups.
//
// Returns ErrEmptyGroupKey or ErrEmptyMember (wrapped with the group position)
// for malformed input; no partial Index is returned.
//
// Complexity: O(Σ k²) over group sizes k.
func Build(groups []Group) (*Index, error) {
	members := 0
	for i, grp := range groups {
		if err := validateGroup(grp); err != nil {
			return nil, fmt.Errorf("Build: group #%d: %w", i, err)
		}
		members += len(grp.Members)
	}

	idx := &Index{
		graph:   core.NewGraph(core.WithCapacity(members)),
		labels:  newEdgeLabels(),
		groups:  len(groups),
		members: members,
	}
	contested := make(map[Pair]struct{})

	for _, grp := range groups {
		for _, member := range grp.Members {
			for _, other := range grp.Members {
				if member == other {
					continue
				}
				idx.graph.AddEdge(member, other)

				p := Pair{From: member, To: other}
				if kept := idx.labels.record(p, grp.Key); kept != grp.Key {
					contested[p.canonical()] = struct{}{}
				}
			}
		}
	}
	idx.conflicts = len(contested)

	return idx, nil
}

func validateGroup(grp Group) error {
	if grp.Key == "" {
		return ErrEmptyGroupKey
	}
	for j, m := range grp.Members {
		if m == "" {
			return fmt.Errorf("%q member #%d: %w", grp.Key, j, ErrEmptyMember)
		}
	}

	return nil
}

// Graph returns the collaboration graph. Callers must not mutate it.
func (idx *Index) Graph() *core.Graph { return idx.graph }

// Labels returns the edge label lookup.
func (idx *Index) Labels() *EdgeLabels { return idx.labels }

// Groups returns the number of groups the index was built from.
func (idx *Index) Groups() int { return idx.groups }

// Members returns the number of member listings across all groups.
func (idx *Index) Members() int { return idx.members }

// Conflicts returns how many unordered member pairs were connected by more
// than one group; for each, the first group in input order supplies the label.
func (idx *Index) Conflicts() int { return idx.conflicts }
