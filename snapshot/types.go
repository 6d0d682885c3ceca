// Package snapshot defines the node-list data model the IPS pipeline
// operates on (spec §3) and the node-list maintenance operations that keep
// adjacency indices coherent after a node is dropped (spec §4.5, §4.6).
package snapshot

import (
	"errors"
	"net"
	"net/netip"
	"strings"

	"github.com/ziggurat-labs/ips-topology/geo"
)

// ErrMalformedAddress is returned when a node's address cannot be parsed as
// either a bare IP or a host:port pair (spec §7, MalformedAddress).
var ErrMalformedAddress = errors.New("snapshot: malformed address")

// NetworkType tags a node with the overlay it belongs to. The enumeration
// is closed: callers compare against the exported constants, never raw
// strings.
type NetworkType string

// Recognized network types (spec §3).
const (
	NetworkZcashLike  NetworkType = "ZcashLike"
	NetworkRippleLike NetworkType = "RippleLike"
	NetworkUnknown    NetworkType = "Unknown"
)

// Node is one entry in a topology snapshot.
//
// Address must be unique within a Snapshot. Connections holds indices into
// the owning node list, representing this node's current outbound peers —
// it is the field node-list maintenance (§4.5) mutates when a node is
// removed and indices are renumbered.
type Node struct {
	Address     string      `json:"address"`
	Connections []int       `json:"connections"`
	Betweenness float64     `json:"betweenness"`
	Closeness   float64     `json:"closeness"`
	Geolocation *geo.Point  `json:"geolocation,omitempty"`
	NetworkType NetworkType `json:"network_type,omitempty"`
}

// Adjacency is a sequence indexed identically to a node list, each element
// being the ordered set of neighbor indices for that node (spec §3). It is
// produced by an external crawler and is read-only during a pipeline run;
// node-list maintenance operates on Node.Connections, not on an Adjacency
// value, so the two must be kept in agreement by the caller (invariant I2).
type Adjacency [][]int

// ValidateAddress reports whether addr parses as a bare IP address or as a
// host:port pair whose host parses as an IP. It does not resolve hostnames.
func ValidateAddress(addr string) error {
	if addr == "" {
		return ErrMalformedAddress
	}
	if _, err := netip.ParseAddr(addr); err == nil {
		return nil
	}
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		return ErrMalformedAddress
	}
	host = strings.Trim(host, "[]")
	if _, err := netip.ParseAddr(host); err != nil {
		return ErrMalformedAddress
	}

	return nil
}
