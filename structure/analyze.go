package structure

import (
	"github.com/UnstableBlob/ambulance-shortest-route/connectivity"
	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// Analyze runs the full structural battery over one snapshot. The degree and
// connectivity sweep feeds both analyzers, so it happens exactly once per
// editor refresh.
// Complexity: O(V + E log E) plus the Hamiltonian stage costs.
func Analyze(s core.Snapshot) Report {
	conn := connectivity.Analyze(s)

	return Report{
		Connectivity: conn,
		Eulerian:     analyzeEulerian(s, conn),
		Hamiltonian:  analyzeHamiltonian(s, conn),
	}
}
