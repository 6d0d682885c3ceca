package snapshot

// FilterNetwork returns a new node list containing only nodes whose
// NetworkType equals target, with connection indices renumbered to match
// (spec §4.6). It is implemented as repeated RemoveNode calls against
// non-matching nodes, highest index first, so that renumbering one removal
// never invalidates the index of a removal still pending.
//
// Relative ordering of surviving nodes is preserved.
//
// Complexity: O(N × (N × avg-degree)) in the worst case (N removals, each
// O(N × avg-degree)); acceptable for the snapshot sizes this pipeline
// targets (spec §2 treats this as a leaf component at 5% budget share).
func FilterNetwork(nodes []Node, target NetworkType) []Node {
	out := make([]Node, len(nodes))
	copy(out, nodes)
	for i := range out {
		out[i].Connections = append(make([]int, 0, len(out[i].Connections)), out[i].Connections...)
	}

	for idx := len(out) - 1; idx >= 0; idx-- {
		if out[idx].NetworkType != target {
			out = RemoveNode(out, idx)
		}
	}

	return out
}
