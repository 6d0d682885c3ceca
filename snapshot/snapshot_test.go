package snapshot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	cases := map[string]bool{
		"192.168.0.1":        true,
		"2001:db8::1":        true,
		"192.168.0.1:8233":   true,
		"[2001:db8::1]:8233": true,
		"":                   false,
		"not-an-address":     false,
		"host.example.com":   false,
	}
	for addr, want := range cases {
		err := ValidateAddress(addr)
		if want {
			assert.NoErrorf(t, err, "addr=%q", addr)
		} else {
			assert.ErrorIsf(t, err, ErrMalformedAddress, "addr=%q", addr)
		}
	}
}

func TestRemoveNodePreservesUntouchedEdges(t *testing.T) {
	nodes := []Node{
		{Address: "a", Connections: []int{1, 2}},
		{Address: "b", Connections: []int{0, 2}},
		{Address: "c", Connections: []int{0, 1}},
	}

	out := RemoveNode(nodes, 1) // remove "b"

	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].Address)
	assert.Equal(t, "c", out[1].Address)
	// a's old connection to c was at index 2, now renumbered to 1.
	assert.Equal(t, []int{1}, out[0].Connections)
	// c's old connection to a was index 0, unaffected by renumbering.
	assert.Equal(t, []int{0}, out[1].Connections)
}

func TestRemoveNodeDropsDanglingReferenceToRemoved(t *testing.T) {
	nodes := []Node{
		{Address: "a", Connections: []int{1}},
		{Address: "b", Connections: []int{0}},
	}

	out := RemoveNode(nodes, 1)

	require.Len(t, out, 1)
	assert.Empty(t, out[0].Connections)
}

func eightNodeMixedSnapshot() []Node {
	return []Node{
		{Address: "1.0.0.0", NetworkType: NetworkZcashLike, Connections: []int{1, 2}},
		{Address: "2.0.0.0", NetworkType: NetworkZcashLike, Connections: []int{0, 2, 3}},
		{Address: "3.0.0.0", NetworkType: NetworkUnknown, Connections: []int{1, 3}},
		{Address: "4.0.0.0", NetworkType: NetworkUnknown, Connections: []int{1, 2, 4}},
		{Address: "5.0.0.0", NetworkType: NetworkUnknown, Connections: []int{3, 5, 7}},
		{Address: "6.0.0.0", NetworkType: NetworkUnknown, Connections: []int{4, 6}},
		{Address: "7.0.0.0", NetworkType: NetworkZcashLike, Connections: []int{5, 7}},
		{Address: "8.0.0.0", NetworkType: NetworkUnknown, Connections: []int{4, 6}},
	}
}

func TestFilterNetworkZcashLike(t *testing.T) {
	nodes := eightNodeMixedSnapshot()

	filtered := FilterNetwork(nodes, NetworkZcashLike)

	require.Len(t, filtered, 3)
	for _, n := range filtered {
		assert.Equal(t, NetworkZcashLike, n.NetworkType)
		for _, c := range n.Connections {
			assert.True(t, c >= 0 && c < len(filtered))
		}
	}
}

func TestFilterNetworkRippleLikeEmpty(t *testing.T) {
	nodes := eightNodeMixedSnapshot()

	filtered := FilterNetwork(nodes, NetworkRippleLike)

	assert.Empty(t, filtered)
}

func TestFilterNetworkUnknown(t *testing.T) {
	nodes := eightNodeMixedSnapshot()

	filtered := FilterNetwork(nodes, NetworkUnknown)

	require.Len(t, filtered, 5)
	for _, n := range filtered {
		assert.Equal(t, NetworkUnknown, n.NetworkType)
	}
}

func TestFilterNetworkIdempotent(t *testing.T) {
	nodes := eightNodeMixedSnapshot()

	once := FilterNetwork(nodes, NetworkZcashLike)
	twice := FilterNetwork(once, NetworkZcashLike)

	assert.Equal(t, once, twice)
}

func TestOriginalNodeListUntouchedByFilter(t *testing.T) {
	nodes := eightNodeMixedSnapshot()
	before := len(nodes)

	_ = FilterNetwork(nodes, NetworkZcashLike)

	assert.Len(t, nodes, before)
	assert.Equal(t, NetworkZcashLike, nodes[0].NetworkType)
}
