// Package roadnet is an in-memory road-network workbench for map editors:
// build junctions and roads, freeze snapshots, route ambulances, and ask
// hard structural questions about coverage and tours.
//
// 🚑 What is roadnet?
//
//	A small, thread-safe engine that brings together:
//		• A live editor model: junctions, roads, blocking, origin/destination markers
//		• Immutable snapshots: deterministic, safely shareable analysis inputs
//		• Shortest routes: Dijkstra and Bellman-Ford with negative-toll support
//		• Negative-cycle taint: "shortest is undefined here" made explicit
//		• Structure analysis: connectivity, Eulerian coverage, Hamiltonian tours
//		• Reasoning traces: every verdict ships the argument that produced it
//		• Topology builder: paths, cycles, stars, wheels, grids, random maps
//		• Graphviz exchange: render a map as DOT and load it back
//
// ✨ Why choose roadnet?
//
//   - Editor-first – every answer is a record the UI can render, not a bare bool
//   - Honest hard problems – Hamiltonian answers admit "indeterminate" past the bound
//   - Deterministic – identical snapshots produce identical results, always
//   - Pure computation – analysis packages share nothing and never block
//
// Under the hood, everything is organized per concern:
//
//	core/         — Snapshot, Node, Edge: the frozen value types every analysis reads
//	network/      — the live mutable model behind the editor, snapshot factory
//	route/        — Dijkstra & Bellman-Ford shortest routes, taint analysis
//	connectivity/ — open-degree census and component sweep
//	structure/    — Eulerian and Hamiltonian analyzers with reasoning traces
//	builder/      — deterministic topology constructors for tests and demos
//	dot/          — Graphviz DOT export and import
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	four junctions on a block; an even degree everywhere means one patrol
//	can sweep every street and come home.
//
// Dive into examples/ for dispatch, patrol and tour walkthroughs.
//
//	go get github.com/UnstableBlob/ambulance-shortest-route
package roadnet
