package rating

import (
	"github.com/ziggurat-labs/ips-topology/config"
	"github.com/ziggurat-labs/ips-topology/snapshot"
)

// Location rating bands (spec §4.8). PreferFarther collapses to a single
// value at and beyond one half-scale distance; the table still lists 2H
// and 3H separately for symmetry with PreferCloser; they evaluate equal.
const (
	ratingFull      = 100.0
	ratingTwoThirds = 66.67
	ratingOneThird  = 33.33
	ratingHalf      = 50.0
	ratingNone      = 0.0
)

// ApplyLocation adds a weighted location-proximity term to each entry's
// rating, in place, using distance from selector to the node the entry
// describes (spec §4.9 step g). It is a no-op when mode is
// config.GeoLocationOff, when selector has no recorded location, or for
// any individual entry whose node has no recorded location — per spec
// §8's boundary cases, coordinates alone never trigger adjustment.
func ApplyLocation(
	entries []Entry,
	nodes []snapshot.Node,
	selector snapshot.Node,
	mode config.GeoLocationMode,
	halfScaleKm float64,
	weight float64,
) {
	if mode == config.GeoLocationOff || selector.Geolocation == nil {
		return
	}

	for i := range entries {
		node := nodes[entries[i].Index]
		if node.Geolocation == nil {
			continue
		}

		distanceKm := selector.Geolocation.DistanceTo(*node.Geolocation) / 1000.0
		entries[i].Rating += locationBand(mode, distanceKm, halfScaleKm) * weight
	}
}

// locationBand evaluates the band table in spec §4.8 for one (mode,
// distance) pair. distance and half are in the same unit (kilometers).
func locationBand(mode config.GeoLocationMode, distance, half float64) float64 {
	switch mode {
	case config.GeoLocationPreferCloser:
		switch {
		case distance < 0.5*half:
			return ratingFull
		case distance < half:
			return ratingFull
		case distance < 2*half:
			return ratingTwoThirds
		case distance < 3*half:
			return ratingOneThird
		default:
			return ratingNone
		}
	case config.GeoLocationPreferFarther:
		switch {
		case distance < 0.5*half:
			return ratingNone
		case distance < half:
			return ratingHalf
		default:
			return ratingFull
		}
	default:
		return ratingNone
	}
}
