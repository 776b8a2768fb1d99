// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Sentinel errors, rendering vocabulary and functional options for dot.
// Policy:
//   - Options follow the functional pattern; constructors panic on values
//     that could never render.
//   - The attribute vocabulary is fixed constants shared by encoder and
//     decoder, so the two sides cannot drift apart.

package dot

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax reports source the parser rejected.
	ErrSyntax = errors.New("dot: syntax error")

	// ErrDirected reports a digraph source; road networks are undirected.
	ErrDirected = errors.New("dot: directed source")
)

// DefaultGraphName names the rendered graph when WithName is not given.
const DefaultGraphName = "road_network"

// Method tags for error context.
const (
	methodExport = "Export"
	methodParse  = "Parse"
)

// Graphviz attribute vocabulary shared by Export and Parse.
const (
	attrLabel   = "label"
	attrShape   = "shape"
	attrColor   = "color"
	attrStyle   = "style"
	attrRankDir = "rankdir"

	shapeMarker      = "doublecircle"
	colorOrigin      = "green"
	colorDestination = "red"
	styleBlocked     = "dashed"
	colorBlocked     = "gray"
)

// Options configure Export.
type Options struct {
	// Name is the graph name emitted in the document header.
	Name string

	// RankDir is the layout direction hint, empty to leave layout to the
	// renderer.
	RankDir string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the baseline Export configuration.
func DefaultOptions() Options {
	return Options{Name: DefaultGraphName}
}

// WithName sets the graph name.
// Panics on an empty name.
func WithName(name string) Option {
	if name == "" {
		panic("dot: WithName requires a non-empty name")
	}

	return func(o *Options) { o.Name = name }
}

// WithRankDir sets the layout direction hint.
// Panics unless dir is one of "TB", "LR", "BT", "RL".
func WithRankDir(dir string) Option {
	switch dir {
	case "TB", "LR", "BT", "RL":
	default:
		panic(fmt.Sprintf("dot: WithRankDir requires TB, LR, BT or RL, got %q", dir))
	}

	return func(o *Options) { o.RankDir = dir }
}
