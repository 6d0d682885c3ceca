package centrality

import (
	"fmt"

	"github.com/ziggurat-labs/ips-topology/graph"
	"github.com/ziggurat-labs/ips-topology/snapshot"
)

// Reconstruct builds a labeled graph.Graph from nodes and adjacency,
// suitable for the external centrality engine (spec §4.2).
//
// For every (i, j) with j in adjacency[i], an undirected edge
// (nodes[i].Address, nodes[j].Address) is inserted. A node with no
// connections is inserted as a self-edge so the engine still assigns it an
// entry (invariant I4). An out-of-range connection index is skipped and
// recorded as a Diagnostic rather than failing the reconstruction (spec
// §7, DanglingConnectionIndex).
//
// If adjacency is nil, each node's own Connections field is used as its
// adjacency row (spec §4.2: "node list alone using connections").
func Reconstruct(nodes []snapshot.Node, adjacency snapshot.Adjacency) (*graph.Graph, []Diagnostic) {
	g := graph.New()
	var diagnostics []Diagnostic

	for i, node := range nodes {
		g.InsertVertex(node.Address)

		row := node.Connections
		if adjacency != nil {
			row = adjacency[i]
		}

		if len(row) == 0 {
			g.InsertEdge(node.Address, node.Address)
			continue
		}

		for _, j := range row {
			if j < 0 || j >= len(nodes) {
				diagnostics = append(diagnostics, Diagnostic{
					NodeIndex: i,
					Message:   fmt.Sprintf("connection to non-existing node %d", j),
				})
				continue
			}
			g.InsertEdge(node.Address, nodes[j].Address)
		}
	}

	return g, diagnostics
}
