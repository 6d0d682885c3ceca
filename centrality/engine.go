package centrality

import (
	"context"

	"github.com/ziggurat-labs/ips-topology/graph"
)

// Engine is the abstract capability the IPS pipeline depends on (spec §6,
// §9 "Polymorphism over centrality source"): degree and eigenvector
// centrality over a reconstructed graph, keyed by node address. Treating
// it as an interface rather than a concrete library lets tests substitute
// a deterministic fake without needing a real numerical backend.
//
// Both methods must return an entry for every vertex in g; a caller that
// looks up an address missing from the result treats it as
// ErrMissingCentrality (spec §7, I3 violation).
//
// Both accept a context so a remote or otherwise cancellable engine can
// abandon in-flight work (spec §5): queries are the pipeline's only
// suspension points.
type Engine interface {
	// DegreeCentrality returns the number of edges incident to each vertex.
	DegreeCentrality(ctx context.Context, g *graph.Graph) (map[string]uint32, error)

	// EigenvectorCentrality returns each vertex's eigenvector centrality,
	// normalized by the engine's own convention; the IPS pipeline
	// re-normalizes the result itself (spec §6).
	EigenvectorCentrality(ctx context.Context, g *graph.Graph) (map[string]float64, error)
}
