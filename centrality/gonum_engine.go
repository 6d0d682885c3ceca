package centrality

import (
	"context"

	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	ipsgraph "github.com/ziggurat-labs/ips-topology/graph"
)

// GonumEngine implements Engine on top of gonum.org/v1/gonum/graph: degree
// is counted directly off the reconstructed graph (so I4's self-loop
// placeholder is honored without fighting gonum's own no-self-loop
// restriction on simple.UndirectedGraph), and eigenvector centrality is
// delegated to gonum's power-iteration implementation in
// gonum.org/v1/gonum/graph/network (grounded in
// raymond-w-ko-beads_viewer/pkg/analysis/betweenness_approx.go, which
// already builds a gonum simple graph and queries that package).
//
// The zero value is ready to use.
type GonumEngine struct{}

// NewGonumEngine returns a ready-to-use GonumEngine.
func NewGonumEngine() *GonumEngine {
	return &GonumEngine{}
}

// DegreeCentrality returns ipsgraph.Graph.Degree for every vertex.
func (GonumEngine) DegreeCentrality(_ context.Context, g *ipsgraph.Graph) (map[string]uint32, error) {
	vertices := g.Vertices()
	out := make(map[string]uint32, len(vertices))
	for _, addr := range vertices {
		out[addr] = uint32(g.Degree(addr))
	}

	return out, nil
}

// EigenvectorCentrality builds a gonum simple.UndirectedGraph mirroring g
// (skipping self-loops, which gonum's simple graph rejects) and returns
// network.EigenvectorCentrality keyed back by address. Isolated vertices
// are added as bare nodes so they still receive an entry (spec I3): gonum
// assigns them a centrality of 0 in their own disconnected component.
func (GonumEngine) EigenvectorCentrality(ctx context.Context, g *ipsgraph.Graph) (map[string]float64, error) {
	vertices := g.Vertices()
	id := make(map[string]int64, len(vertices))
	addr := make(map[int64]string, len(vertices))

	gg := simple.NewUndirectedGraph()
	for i, a := range vertices {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		id[a] = int64(i)
		addr[int64(i)] = a
		gg.AddNode(simple.Node(int64(i)))
	}

	for _, a := range vertices {
		for _, n := range g.NeighborIDs(a) {
			if id[a] >= id[n] {
				continue // undirected: add each pair once
			}
			gg.SetEdge(simple.Edge{F: simple.Node(id[a]), T: simple.Node(id[n])})
		}
	}

	scores := network.EigenvectorCentrality(gg)
	out := make(map[string]float64, len(vertices))
	for gid, score := range scores {
		out[addr[gid]] = score
	}
	for _, a := range vertices {
		if _, ok := out[a]; !ok {
			out[a] = 0
		}
	}

	return out, nil
}
