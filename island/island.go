// Package island detects connected components ("islands") of a topology's
// adjacency via breadth-first search (spec §4.3).
//
// Island detection is currently observational only: the IPS pipeline calls
// it for diagnostics but does not yet merge islands before rating (spec §9
// reserves that as a future hook).
package island

import "github.com/ziggurat-labs/ips-topology/snapshot"

// Detect partitions [0, len(adjacency)) into connected components, each
// represented as the set of member indices. The returned components are
// pairwise disjoint and their union is exactly [0, len(adjacency)).
//
// Complexity: O(N + E).
func Detect(adjacency snapshot.Adjacency) []map[int]struct{} {
	n := len(adjacency)
	visited := make([]bool, n)
	var islands []map[int]struct{}

	for i := 0; i < n; i++ {
		if visited[i] {
			continue
		}

		island := make(map[int]struct{})
		queue := []int{i}
		visited[i] = true

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			island[cur] = struct{}{}

			for _, next := range adjacency[cur] {
				if !visited[next] {
					visited[next] = true
					queue = append(queue, next)
				}
			}
		}

		islands = append(islands, island)
	}

	return islands
}
