// Package bridge implements the "quasi-bridge" heuristic (spec §4.4):
// edges whose both endpoints' betweenness centrality exceeds a threshold
// derived from the median betweenness of the whole snapshot.
//
// This is deliberately not a graph-theoretic bridge finder (no Tarjan's
// algorithm, no chain decomposition): it flags edges that sit between
// densely interconnected clusters, using median + a configurable
// multiplier to stay robust across both heavy-tailed and balanced graphs.
package bridge

import (
	"errors"
	"sort"

	"github.com/ziggurat-labs/ips-topology/snapshot"
)

// ErrInsufficientNodes is returned by Find when fewer than two nodes are
// supplied; bridge detection needs at least a pair to say anything (spec
// §7, InsufficientNodes). Callers should treat it as recoverable and use
// the accompanying empty map.
var ErrInsufficientNodes = errors.New("bridge: fewer than two nodes")

// Find returns a symmetric adjacency of quasi-bridge endpoints: index u
// appears in the result with neighbor v exactly when v appears with
// neighbor u (spec §4.4 contract).
//
// thresholdAdjustment multiplies the median betweenness to derive the
// threshold T. Values > 1 are typical; the median is computed as the
// arithmetic mean of the two middle values for an even-sized sample.
//
// The two endpoints are tested asymmetrically: the anchor node u qualifies
// when its betweenness is >= T, while its neighbor v must be strictly > T.
//
// If len(nodes) < 2, Find returns an empty map and ErrInsufficientNodes.
//
// Complexity: O(N log N) for the median sort, plus O(N × avg-degree) for
// the threshold scan.
func Find(nodes []snapshot.Node, thresholdAdjustment float64) (map[int]map[int]struct{}, error) {
	bridges := make(map[int]map[int]struct{})
	if len(nodes) < 2 {
		return bridges, ErrInsufficientNodes
	}

	betweenness := make([]float64, len(nodes))
	for i, n := range nodes {
		betweenness[i] = n.Betweenness
	}
	threshold := median(betweenness) * thresholdAdjustment

	for u, node := range nodes {
		if node.Betweenness < threshold {
			continue
		}
		for _, v := range node.Connections {
			if nodes[v].Betweenness <= threshold {
				continue
			}
			link(bridges, u, v)
			link(bridges, v, u)
		}
	}

	return bridges, nil
}

// link records that peer is a quasi-bridge neighbor of node.
func link(bridges map[int]map[int]struct{}, node, peer int) {
	peers, ok := bridges[node]
	if !ok {
		peers = make(map[int]struct{})
		bridges[node] = peers
	}
	peers[peer] = struct{}{}
}

// median returns the median of values without mutating the caller's slice.
// Assumes len(values) > 0.
func median(values []float64) float64 {
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}

	return (sorted[mid-1] + sorted[mid]) / 2
}
