// Package ipstopology computes recommended peer lists for nodes in a
// peer-to-peer overlay network using centrality-based multi-criteria
// decision analysis (MCDA) over a crawled topology snapshot.
//
// Given a snapshot of known nodes and their current outbound connections,
// the Intelligent Peer Sharing (IPS) pipeline rates every node by a
// weighted combination of degree, betweenness, closeness and eigenvector
// centrality, optionally adjusts that rating by geographic distance, and
// selects which peers each node should add or drop — raising the
// connectivity of under-connected nodes, pruning over-connected ones, and
// steering traffic away from a handful of "hot" high-betweenness nodes.
//
// Subpackages:
//
//	snapshot/   — node/adjacency data model, node removal, network filtering
//	normalize/  — min/max normalization of centrality vectors
//	graph/      — thread-safe labeled graph used to feed the centrality engine
//	centrality/ — graph reconstruction + the degree/eigenvector engine contract
//	island/     — BFS connected-component (island) detection
//	bridge/     — betweenness-threshold "quasi-bridge" detection
//	geo/        — geodesic distance between geolocated nodes
//	rating/     — per-node MCDA rating and location-based adjustment
//	ips/        — the IPS pipeline itself
//	config/     — MCDA weights and pipeline tuning knobs, loaded from YAML
//	cmd/ipsctl/ — CLI harness: snapshot in, peer lists out
//
// This package does not discover nodes, contact peers, enforce its own
// recommendations, or persist state across runs; it is a pure function of
// one topology snapshot to one set of peer-list recommendations.
package ipstopology
