// Package config defines the IPS pipeline's tuning knobs (spec §6) and
// loads them from YAML, following the same gopkg.in/yaml.v3-backed config
// style as vanderheijden86-b9s's pkg/config and the teacher's own
// (indirect) dependency on yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GeoLocationMode selects how location rating adjusts candidate ratings
// (spec §4.8).
type GeoLocationMode string

// Recognized geolocation modes.
const (
	GeoLocationOff           GeoLocationMode = "Off"
	GeoLocationPreferCloser  GeoLocationMode = "PreferCloser"
	GeoLocationPreferFarther GeoLocationMode = "PreferFarther"
)

// MCDAWeights are the non-negative per-factor weights applied in §4.7 and
// §4.8. The core never normalizes these; they are opaque multipliers
// supplied by configuration.
type MCDAWeights struct {
	Degree      float64 `yaml:"degree"`
	Betweenness float64 `yaml:"betweenness"`
	Closeness   float64 `yaml:"closeness"`
	Eigenvector float64 `yaml:"eigenvector"`
	Location    float64 `yaml:"location"`
}

// IPSConfiguration holds every recognized configuration option from spec
// §6.
type IPSConfiguration struct {
	MCDAWeights                 MCDAWeights     `yaml:"mcda_weights"`
	Geolocation                 GeoLocationMode `yaml:"geolocation"`
	GeolocationMinMaxDistanceKm float64         `yaml:"geolocation_minmax_distance_km"`
	ChangeAtLeast               uint32          `yaml:"change_at_least"`
	ChangeNoMore                uint32          `yaml:"change_no_more"`
	BridgeThresholdAdjustment   float64         `yaml:"bridge_threshold_adjustment"`
}

// Default returns the configuration the original implementation ships
// when no file is supplied: location adjustment off, one mandatory churn
// slot, and a 1.25x bridge threshold multiplier.
func Default() IPSConfiguration {
	return IPSConfiguration{
		Geolocation:                 GeoLocationOff,
		GeolocationMinMaxDistanceKm: 1000,
		ChangeAtLeast:               1,
		ChangeNoMore:                5,
		BridgeThresholdAdjustment:   1.25,
	}
}

// Load reads and parses an IPSConfiguration from a YAML file at path,
// starting from Default() so a partial document only overrides the keys
// it sets.
func Load(path string) (IPSConfiguration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return IPSConfiguration{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return IPSConfiguration{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}
