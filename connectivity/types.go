// Package connectivity: result record for the degree and connectivity sweep.
package connectivity

import "sort"

// Info is the degree and connectivity report for one snapshot.
//
// All fields describe the open subnetwork: blocked segments and segments
// referencing missing nodes are invisible here.
type Info struct {
	// Degrees maps every node ID to its open degree (self-loops count 2).
	Degrees map[string]int `json:"degrees"`

	// Connected reports whether all nodes lie in one component. Empty and
	// single-node snapshots are connected by convention.
	Connected bool `json:"connected"`

	// ComponentCount is the number of connected components (0 when the
	// snapshot has no nodes).
	ComponentCount int `json:"componentCount"`

	// Components holds each component's member IDs, members sorted
	// ascending, components ordered by their smallest member.
	Components [][]string `json:"components"`
}

// OddDegreeNodes returns the IDs whose open degree is odd, sorted ascending.
// The Eulerian analyzer builds its parity argument on this list.
// Complexity: O(V log V)
func (i Info) OddDegreeNodes() []string {
	var odd []string
	for id, d := range i.Degrees {
		if d%2 != 0 {
			odd = append(odd, id)
		}
	}
	sort.Strings(odd)

	return odd
}
