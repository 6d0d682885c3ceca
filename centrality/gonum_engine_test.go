package centrality

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziggurat-labs/ips-topology/graph"
)

func TestGonumEngineEigenvectorSymmetricOnClique(t *testing.T) {
	g := graph.New()
	members := []string{"a", "b", "c", "d"}
	for i, u := range members {
		for _, v := range members[i+1:] {
			g.InsertEdge(u, v)
		}
	}

	engine := NewGonumEngine()
	scores, err := engine.EigenvectorCentrality(context.Background(), g)
	require.NoError(t, err)
	require.Len(t, scores, 4)

	for _, u := range members[1:] {
		assert.InDelta(t, scores[members[0]], scores[u], 1e-9)
	}
}

func TestGonumEngineEigenvectorIsolatedVertexIsZero(t *testing.T) {
	g := graph.New()
	g.InsertEdge("connected-1", "connected-2")
	g.InsertEdge("isolated", "isolated")

	engine := NewGonumEngine()
	scores, err := engine.EigenvectorCentrality(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, 0.0, scores["isolated"])
}

func TestGonumEngineDegreeIgnoresSelfLoopWithRealNeighbor(t *testing.T) {
	g := graph.New()
	g.InsertEdge("a", "a")
	g.InsertEdge("a", "b")

	engine := NewGonumEngine()
	degrees, err := engine.DegreeCentrality(context.Background(), g)
	require.NoError(t, err)

	assert.Equal(t, uint32(1), degrees["a"])
	assert.Equal(t, uint32(1), degrees["b"])
}
