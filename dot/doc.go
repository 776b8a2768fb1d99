// Package dot renders a frozen road network as a Graphviz document and reads
// one back into a live editor model.
//
// What the picture encodes:
//   - every junction is a node, labeled with its display label;
//   - the origin marker draws as a green doublecircle, the destination as a
//     red one;
//   - every road is an undirected edge labeled with its weight;
//   - blocked roads draw dashed and gray.
//
// Parse reverses the same encoding, so Export followed by Parse reproduces a
// network up to regenerated road IDs. Hand-written documents in the same
// vocabulary parse too; junctions mentioned only inside edge statements are
// created on the fly.
//
// Errors:
//   - ErrSyntax   - the source is not usable DOT, or a weight label is not a
//     number.
//   - ErrDirected - the source declares a digraph; roads are undirected.
//
// See also: package network for the editor model, package core for Snapshot.
package dot
