package snapshot

// RemoveNode drops the node at index idx from nodes and renumbers every
// remaining node's Connections so they continue to index correctly into
// the shorter list (spec §4.5).
//
// Steps, in order:
//  1. Drop idx from every remaining node's Connections, if present.
//  2. Remove the node at idx from the list.
//  3. Decrement every remaining connection index greater than idx.
//
// This ordering matters: step 3 must run against indices that still
// reflect the pre-removal numbering, which is why the drop in step 1
// happens before the list itself shrinks.
//
// Complexity: O(N × avg-degree).
func RemoveNode(nodes []Node, idx int) []Node {
	for i := range nodes {
		nodes[i].Connections = dropIndex(nodes[i].Connections, idx)
	}

	out := make([]Node, 0, len(nodes)-1)
	out = append(out, nodes[:idx]...)
	out = append(out, nodes[idx+1:]...)

	for i := range out {
		for j, c := range out[i].Connections {
			if c > idx {
				out[i].Connections[j] = c - 1
			}
		}
	}

	return out
}

// dropIndex returns connections with the first occurrence of target
// removed, preserving order of the remaining elements.
func dropIndex(connections []int, target int) []int {
	for i, c := range connections {
		if c == target {
			return append(connections[:i:i], connections[i+1:]...)
		}
	}

	return connections
}
