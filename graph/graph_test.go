package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertEdgeUndirected(t *testing.T) {
	g := New()
	g.InsertEdge("a", "b")

	assert.ElementsMatch(t, []string{"b"}, g.NeighborIDs("a"))
	assert.ElementsMatch(t, []string{"a"}, g.NeighborIDs("b"))
	assert.Equal(t, 1, g.Degree("a"))
	assert.Equal(t, 1, g.Degree("b"))
}

func TestSelfLoopPlaceholder(t *testing.T) {
	g := New()
	g.InsertEdge("iso", "iso")

	assert.True(t, g.HasVertex("iso"))
	assert.True(t, g.HasSelfLoop("iso"))
	assert.Empty(t, g.NeighborIDs("iso"))
	assert.Equal(t, 1, g.Degree("iso"))
}

func TestSelfLoopDoesNotInflateRealDegree(t *testing.T) {
	g := New()
	g.InsertEdge("a", "a")
	g.InsertEdge("a", "b")

	assert.Equal(t, 1, g.Degree("a"))
}

func TestVerticesInsertionOrder(t *testing.T) {
	g := New()
	g.InsertEdge("c", "a")
	g.InsertVertex("b")

	assert.Equal(t, []string{"c", "a", "b"}, g.Vertices())
}
