// SPDX-License-Identifier: MIT
//
// File: parse.go
// Role: Graphviz DOT -> live network decoder.
// Policy:
//   - Accepts the encoding Export writes; unknown attributes are ignored
//     rather than rejected, so annotated documents still load.
//   - Road IDs are regenerated; junction IDs, labels, weights, blocking and
//     markers round-trip.

package dot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/awalterschulze/gographviz"

	"github.com/UnstableBlob/ambulance-shortest-route/network"
)

// Parse reads a DOT document written by Export, or by hand in the same
// vocabulary, into a fresh network. Node names become junction IDs, edge
// labels become weights (1 when absent), a dashed style marks blocking, and
// the marker colors restore origin and destination. Junctions mentioned only
// inside edge statements are created with an empty label.
// Returns ErrSyntax, ErrDirected, or a wrapped network error.
// Complexity: O(V + R) plus parsing.
func Parse(src string, opts ...network.Option) (*network.Network, error) {
	// 1) Parse and analyse the document.
	ast, err := gographviz.ParseString(src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", methodParse, ErrSyntax, err)
	}
	g := gographviz.NewGraph()
	if err = gographviz.Analyse(ast, g); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", methodParse, ErrSyntax, err)
	}
	if g.Directed {
		return nil, fmt.Errorf("%s: %w", methodParse, ErrDirected)
	}

	net := network.New(opts...)

	// 2) Junctions, with marker restoration.
	var gn *gographviz.Node
	for _, gn = range g.Nodes.Nodes {
		id := unquote(gn.Name)
		if _, err = net.AddNode(id, attrValue(gn.Attrs, attrLabel)); err != nil {
			return nil, fmt.Errorf("%s: %w", methodParse, err)
		}
		if attrValue(gn.Attrs, attrShape) != shapeMarker {
			continue
		}
		switch attrValue(gn.Attrs, attrColor) {
		case colorOrigin:
			err = net.SetOrigin(id)
		case colorDestination:
			err = net.SetDestination(id)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", methodParse, err)
		}
	}

	// 3) Roads: weight from the label, blocking from the style. Endpoints
	// missing a node statement are materialized first.
	var (
		ge      *gographviz.Edge
		a, b    string
		id, raw string
		weight  float64
	)
	for _, ge = range g.Edges.Edges {
		a, b = unquote(ge.Src), unquote(ge.Dst)
		if err = ensureJunction(net, a); err != nil {
			return nil, fmt.Errorf("%s: %w", methodParse, err)
		}
		if err = ensureJunction(net, b); err != nil {
			return nil, fmt.Errorf("%s: %w", methodParse, err)
		}

		weight = 1
		if raw = attrValue(ge.Attrs, attrLabel); raw != "" {
			if weight, err = strconv.ParseFloat(raw, 64); err != nil {
				return nil, fmt.Errorf("%s: road %s-%s: %w: weight label %q",
					methodParse, a, b, ErrSyntax, raw)
			}
		}
		if id, err = net.AddRoad("", a, b, weight); err != nil {
			return nil, fmt.Errorf("%s: %w", methodParse, err)
		}
		if strings.Contains(attrValue(ge.Attrs, attrStyle), styleBlocked) {
			if err = net.SetBlocked(id, true); err != nil {
				return nil, fmt.Errorf("%s: %w", methodParse, err)
			}
		}
	}

	return net, nil
}

// ensureJunction adds id as a label-less junction unless it already exists.
func ensureJunction(net *network.Network, id string) error {
	if _, ok := net.Node(id); ok {
		return nil
	}
	_, err := net.AddNode(id, "")

	return err
}

// attrValue reads one attribute, stripping the quotes the parser keeps.
func attrValue(attrs gographviz.Attrs, key string) string {
	val, ok := attrs[gographviz.Attr(key)]
	if !ok {
		return ""
	}

	return unquote(strings.TrimSpace(val))
}

// unquote strips one layer of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}

	return s
}
