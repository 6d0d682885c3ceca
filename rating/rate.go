// Package rating implements the two-layer MCDA scoring the IPS pipeline
// uses to rank candidate peers: a constant per-node rating from graph
// centralities (spec §4.7), and a per-selecting-node location adjustment
// (spec §4.8).
package rating

import (
	"fmt"

	"github.com/ziggurat-labs/ips-topology/centrality"
	"github.com/ziggurat-labs/ips-topology/config"
	"github.com/ziggurat-labs/ips-topology/normalize"
	"github.com/ziggurat-labs/ips-topology/snapshot"
)

// normalizeToValue is the constant every scaled factor is multiplied by
// before weighting (spec §4.1, §4.7).
const normalizeToValue = 100.0

// FourFactors bundles the normalization bounds for the four centralities
// that feed node rating, each computed once per run over the full
// snapshot (spec §4.9 step 4).
type FourFactors struct {
	Degree      normalize.Factors
	Betweenness normalize.Factors
	Closeness   normalize.Factors
	Eigenvector normalize.Factors
}

// Entry is one row of a ranking table: an address, its index in the
// originating node list, and its current rating (spec §3, "Peer entry").
type Entry struct {
	Address string
	Index   int
	Rating  float64
}

// BuildConstantFactors computes const_factors (spec §4.9 step 6): one
// Entry per node, rated per Rate. degrees and eigenvectors must have an
// entry for every node address; a miss is ErrMissingCentrality (I3).
func BuildConstantFactors(
	nodes []snapshot.Node,
	degrees map[string]uint32,
	eigenvectors map[string]float64,
	factors FourFactors,
	weights config.MCDAWeights,
) ([]Entry, error) {
	entries := make([]Entry, len(nodes))
	for i, node := range nodes {
		degree, ok := degrees[node.Address]
		if !ok {
			return nil, fmt.Errorf("%w: degree for %s", centrality.ErrMissingCentrality, node.Address)
		}
		eigen, ok := eigenvectors[node.Address]
		if !ok {
			return nil, fmt.Errorf("%w: eigenvector for %s", centrality.ErrMissingCentrality, node.Address)
		}

		entries[i] = Entry{
			Address: node.Address,
			Index:   i,
			Rating:  Rate(node, degree, eigen, factors, weights),
		}
	}

	return entries, nil
}

// Rate computes a single node's constant rating (spec §4.7):
//
//	rating = 100 * ( w_d·scale_d(degree) + w_b·scale_b(betweenness)
//	               + w_c·scale_c(closeness) + w_e·scale_e(eigenvector) )
//
// scale_* are Factors.Scale from the four FourFactors fields; w_* are the
// MCDA weights. Weights are opaque and not normalized by this function.
func Rate(node snapshot.Node, degree uint32, eigenvalue float64, factors FourFactors, weights config.MCDAWeights) float64 {
	var rating float64
	rating += factors.Degree.Scale(float64(degree)) * normalizeToValue * weights.Degree
	rating += factors.Betweenness.Scale(node.Betweenness) * normalizeToValue * weights.Betweenness
	rating += factors.Closeness.Scale(node.Closeness) * normalizeToValue * weights.Closeness
	rating += factors.Eigenvector.Scale(eigenvalue) * normalizeToValue * weights.Eigenvector

	return rating
}

// Clone returns a value copy of entries, safe for a caller to mutate
// in-place (e.g. via ApplyLocation) without aliasing the shared table the
// IPS pipeline clones per selecting node (spec §9, "value-copy model with
// owned vectors per iteration").
func Clone(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)

	return out
}
