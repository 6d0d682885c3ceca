package ips

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/ziggurat-labs/ips-topology/centrality"
	"github.com/ziggurat-labs/ips-topology/config"
	"github.com/ziggurat-labs/ips-topology/island"
	"github.com/ziggurat-labs/ips-topology/normalize"
	"github.com/ziggurat-labs/ips-topology/rating"
	"github.com/ziggurat-labs/ips-topology/snapshot"
)

// Pipeline runs the IPS algorithm against a fixed configuration and
// centrality engine. It holds no per-run state and is safe to reuse
// (and call concurrently, since every Generate call owns its own working
// tables) across snapshots.
type Pipeline struct {
	cfg    config.IPSConfiguration
	engine centrality.Engine
}

// New builds a Pipeline from a configuration and a centrality engine
// (spec §6, "Polymorphism over centrality source").
func New(cfg config.IPSConfiguration, engine centrality.Engine) *Pipeline {
	return &Pipeline{cfg: cfg, engine: engine}
}

// Generate runs the full pipeline (spec §4.9 steps 1-6, a-h) and returns
// one Peer per input node, in input order. adjacency may be nil, in which
// case each node's own Connections field stands in as its adjacency row
// (consistent with centrality.Reconstruct's fallback).
//
// ctx governs the only suspension points in the pipeline: the centrality
// engine's two queries (spec §5).
func (p *Pipeline) Generate(ctx context.Context, nodes []snapshot.Node, adjacency snapshot.Adjacency) ([]Peer, error) {
	if len(nodes) == 0 {
		return []Peer{}, nil
	}

	for _, n := range nodes {
		if err := snapshot.ValidateAddress(n.Address); err != nil {
			return nil, fmt.Errorf("ips: node %q: %w", n.Address, err)
		}
	}

	g, _ := centrality.Reconstruct(nodes, adjacency)

	// Island detection is observational only; its output is not consumed
	// by selection (spec §4.3, §9 reserved future hook).
	_ = island.Detect(effectiveAdjacency(nodes, adjacency))

	degrees, err := p.engine.DegreeCentrality(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("ips: degree centrality: %w", err)
	}
	eigenvectors, err := p.engine.EigenvectorCentrality(ctx, g)
	if err != nil {
		return nil, fmt.Errorf("ips: eigenvector centrality: %w", err)
	}

	for _, n := range nodes {
		if _, ok := degrees[n.Address]; !ok {
			return nil, fmt.Errorf("%w: degree for %s", centrality.ErrMissingCentrality, n.Address)
		}
		if _, ok := eigenvectors[n.Address]; !ok {
			return nil, fmt.Errorf("%w: eigenvector for %s", centrality.ErrMissingCentrality, n.Address)
		}
	}

	factors, err := buildFourFactors(nodes, degrees, eigenvectors)
	if err != nil {
		return nil, err
	}

	var degreeSum float64
	for _, n := range nodes {
		degreeSum += float64(degrees[n.Address])
	}
	avgDegree := degreeSum / float64(len(nodes))

	constFactors, err := rating.BuildConstantFactors(nodes, degrees, eigenvectors, factors, p.cfg.MCDAWeights)
	if err != nil {
		return nil, err
	}

	peers := make([]Peer, len(nodes))
	for i, node := range nodes {
		peers[i] = p.recommend(i, node, nodes, adjacency, constFactors, degrees[node.Address], avgDegree)
	}

	return peers, nil
}

// recommend runs steps a-h of spec §4.9 for a single selecting node at
// index i.
func (p *Pipeline) recommend(
	i int,
	node snapshot.Node,
	nodes []snapshot.Node,
	adjacency snapshot.Adjacency,
	constFactors []rating.Entry,
	degree uint32,
	avgDegree float64,
) Peer {
	ratingsU := rating.Clone(constFactors)

	if p.cfg.Geolocation != config.GeoLocationOff {
		rating.ApplyLocation(ratingsU, nodes, node, p.cfg.Geolocation, p.cfg.GeolocationMinMaxDistanceKm, p.cfg.MCDAWeights.Location)
	}

	conns := connectionsFor(nodes, adjacency, i)
	currRatings := make([]rating.Entry, 0, len(conns))
	for _, j := range conns {
		currRatings = append(currRatings, ratingsU[j])
	}

	desired := desiredDegree(avgDegree, degree)
	toDelete, toAdd := changeCounts(desired, degree, p.cfg.ChangeAtLeast, p.cfg.ChangeNoMore)

	sortByRatingDesc(currRatings)
	cut := len(currRatings) - int(toDelete)
	if cut < 0 {
		cut = 0
	}
	survivors := currRatings[:cut]

	outputList := make([]string, 0, len(survivors)+int(toAdd))
	existing := make(map[string]struct{}, len(survivors))
	for _, e := range survivors {
		outputList = append(outputList, e.Address)
		existing[e.Address] = struct{}{}
	}

	if toAdd > 0 {
		candidates := make([]rating.Entry, 0, len(ratingsU))
		for _, e := range ratingsU {
			if e.Index == i {
				continue // f. exclude self
			}
			candidates = append(candidates, e)
		}
		sortByRatingDesc(candidates)

		pool := make([]rating.Entry, 0, 2*int(toAdd))
		poolCap := 2 * int(toAdd)
		for _, e := range candidates {
			if _, dup := existing[e.Address]; dup {
				continue
			}
			pool = append(pool, e)
			if len(pool) == poolCap {
				break
			}
		}
		sortByBetweennessAsc(pool, nodes)

		take := int(toAdd)
		if take > len(pool) {
			take = len(pool)
		}
		for _, e := range pool[:take] {
			outputList = append(outputList, e.Address)
		}
	}

	return Peer{Address: node.Address, List: outputList}
}

// desiredDegree computes d* = round((avgDegree + deg(u)) / 2) as a
// non-negative integer (spec §4.9d).
func desiredDegree(avgDegree float64, degree uint32) uint32 {
	d := math.Round((avgDegree + float64(degree)) / 2)
	if d < 0 {
		return 0
	}

	return uint32(d)
}

// changeCounts computes to_delete and to_add (spec §4.9e).
func changeCounts(desired, degree, changeAtLeast, changeNoMore uint32) (toDelete, toAdd uint32) {
	if desired < degree {
		toDelete = degree - desired
	} else {
		toDelete = changeAtLeast
	}

	if desired > degree {
		toAdd = (desired - degree) + toDelete
	} else {
		toAdd = changeAtLeast
	}
	if toAdd > changeNoMore {
		toAdd = changeNoMore
	}

	return toDelete, toAdd
}

// connectionsFor returns adjacency[i] if adjacency is non-nil, otherwise
// nodes[i].Connections.
func connectionsFor(nodes []snapshot.Node, adjacency snapshot.Adjacency, i int) []int {
	if adjacency != nil {
		return adjacency[i]
	}

	return nodes[i].Connections
}

// effectiveAdjacency mirrors connectionsFor across the whole node list,
// for callers (island detection) that need a full snapshot.Adjacency.
func effectiveAdjacency(nodes []snapshot.Node, adjacency snapshot.Adjacency) snapshot.Adjacency {
	if adjacency != nil {
		return adjacency
	}

	out := make(snapshot.Adjacency, len(nodes))
	for i, n := range nodes {
		out[i] = n.Connections
	}

	return out
}

// buildFourFactors computes normalization bounds for all four
// centralities over their full value vectors (spec §4.9 step 4).
func buildFourFactors(nodes []snapshot.Node, degrees map[string]uint32, eigenvectors map[string]float64) (rating.FourFactors, error) {
	degreeValues := make([]float64, len(nodes))
	betweennessValues := make([]float64, len(nodes))
	closenessValues := make([]float64, len(nodes))
	eigenvectorValues := make([]float64, len(nodes))

	for i, n := range nodes {
		degreeValues[i] = float64(degrees[n.Address])
		betweennessValues[i] = n.Betweenness
		closenessValues[i] = n.Closeness
		eigenvectorValues[i] = eigenvectors[n.Address]
	}

	degreeFactors, err := normalize.Determine(degreeValues)
	if err != nil {
		return rating.FourFactors{}, err
	}
	betweennessFactors, err := normalize.Determine(betweennessValues)
	if err != nil {
		return rating.FourFactors{}, err
	}
	closenessFactors, err := normalize.Determine(closenessValues)
	if err != nil {
		return rating.FourFactors{}, err
	}
	eigenvectorFactors, err := normalize.Determine(eigenvectorValues)
	if err != nil {
		return rating.FourFactors{}, err
	}

	return rating.FourFactors{
		Degree:      degreeFactors,
		Betweenness: betweennessFactors,
		Closeness:   closenessFactors,
		Eigenvector: eigenvectorFactors,
	}, nil
}

// sortByRatingDesc sorts by rating descending, tie-broken by input index
// ascending (spec §5 ordering guarantee).
func sortByRatingDesc(entries []rating.Entry) {
	sort.SliceStable(entries, func(a, b int) bool {
		if entries[a].Rating != entries[b].Rating {
			return entries[a].Rating > entries[b].Rating
		}

		return entries[a].Index < entries[b].Index
	})
}

// sortByBetweennessAsc sorts by raw betweenness ascending, tie-broken by
// input index ascending (spec §4.9h, §5 ordering guarantee).
func sortByBetweennessAsc(entries []rating.Entry, nodes []snapshot.Node) {
	sort.SliceStable(entries, func(a, b int) bool {
		ba, bb := nodes[entries[a].Index].Betweenness, nodes[entries[b].Index].Betweenness
		if ba != bb {
			return ba < bb
		}

		return entries[a].Index < entries[b].Index
	})
}
