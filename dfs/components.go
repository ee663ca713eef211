// SPDX-License-Identifier: MIT

package dfs

import (
	"sort"

	"github.com/katalvlaran/costar/core"
)

// Components partitions g into the node sets reachable from each other.
// On a symmetric graph these are the connected components.
//
// Each component is sorted by label; components are ordered largest first,
// ties broken by their smallest label.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	res, err := DFS(g, "", WithFullTraversal())
	if err != nil {
		return nil, err
	}

	rootOf := make(map[string]string, len(res.Order))
	byRoot := make(map[string][]string, len(res.Roots))
	for _, id := range res.Order {
		root := id
		if p, ok := res.Parent[id]; ok {
			root = rootOf[p]
		}
		rootOf[id] = root
		byRoot[root] = append(byRoot[root], id)
	}

	comps := make([][]string, 0, len(res.Roots))
	for _, r := range res.Roots {
		c := byRoot[r]
		sort.Strings(c)
		comps = append(comps, c)
	}
	sort.SliceStable(comps, func(i, j int) bool {
		if len(comps[i]) != len(comps[j]) {
			return len(comps[i]) > len(comps[j])
		}

		return comps[i][0] < comps[j][0]
	})

	return comps, nil
}
