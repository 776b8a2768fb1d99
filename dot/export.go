// SPDX-License-Identifier: MIT
//
// File: export.go
// Role: Snapshot -> Graphviz DOT encoder.
// Policy:
//   - Junctions and roads are emitted in snapshot order, so an unchanged
//     network renders byte-identically.
//   - The visual encoding doubles as the data encoding: Parse reads roles,
//     weights and blocking back from the same attributes.

package dot

import (
	"fmt"
	"strconv"

	"github.com/awalterschulze/gographviz"

	"github.com/UnstableBlob/ambulance-shortest-route/core"
)

// Export renders the snapshot as an undirected Graphviz document.
// Complexity: O(V + R) plus serialization.
func Export(s core.Snapshot, opts ...Option) (string, error) {
	// 1) Resolve options.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	// 2) Open an escaping graph; junction IDs may hold any characters.
	g := gographviz.NewEscape()
	if err := g.SetDir(false); err != nil {
		return "", fmt.Errorf("%s: %w", methodExport, err)
	}
	if err := g.SetName(o.Name); err != nil {
		return "", fmt.Errorf("%s: %w", methodExport, err)
	}
	if o.RankDir != "" {
		if err := g.AddAttr(o.Name, attrRankDir, o.RankDir); err != nil {
			return "", fmt.Errorf("%s: %w", methodExport, err)
		}
	}

	// 3) Junctions, snapshot order.
	var n core.Node
	for _, n = range s.Nodes {
		if err := g.AddNode(o.Name, n.ID, nodeAttrs(n)); err != nil {
			return "", fmt.Errorf("%s: junction %q: %w", methodExport, n.ID, err)
		}
	}

	// 4) Roads, snapshot order.
	var e core.Edge
	for _, e = range s.Edges {
		if err := g.AddEdge(e.A, e.B, false, edgeAttrs(e)); err != nil {
			return "", fmt.Errorf("%s: road %q: %w", methodExport, e.ID, err)
		}
	}

	return g.String(), nil
}

// nodeAttrs encodes the junction's label and marker role.
func nodeAttrs(n core.Node) map[string]string {
	attrs := make(map[string]string, 3)
	if n.Label != "" {
		attrs[attrLabel] = n.Label
	}
	switch n.Role {
	case core.RoleOrigin:
		attrs[attrShape] = shapeMarker
		attrs[attrColor] = colorOrigin
	case core.RoleDestination:
		attrs[attrShape] = shapeMarker
		attrs[attrColor] = colorDestination
	}

	return attrs
}

// edgeAttrs encodes the road's weight and blocked state.
func edgeAttrs(e core.Edge) map[string]string {
	attrs := map[string]string{
		attrLabel: strconv.FormatFloat(e.Weight, 'g', -1, 64),
	}
	if e.Blocked {
		attrs[attrStyle] = styleBlocked
		attrs[attrColor] = colorBlocked
	}

	return attrs
}
