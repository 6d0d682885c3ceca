// Package centrality reconstructs a labeled graph from a topology
// snapshot (spec §4.2) and defines the black-box centrality engine
// contract the IPS pipeline queries (spec §6).
package centrality

import (
	"errors"
	"fmt"
)

// ErrMissingCentrality is returned when the centrality engine has no entry
// for a known address — a violation of invariant I3 (spec §7).
var ErrMissingCentrality = errors.New("centrality: missing entry for known address")

// Diagnostic describes a recovered, non-fatal condition encountered while
// reconstructing the graph — currently only DanglingConnectionIndex (spec
// §7): an entry in a node's Connections pointed outside the node list and
// was skipped.
type Diagnostic struct {
	NodeIndex int
	Message   string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("node %d: %s", d.NodeIndex, d.Message)
}
