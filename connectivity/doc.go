// Package connectivity reports degrees and connected components of a
// road-network snapshot, considering only open (unblocked) segments.
//
// Overview:
//
//   - Analyze performs one iterative depth-first sweep over the unblocked
//     adjacency and labels every component it finds. There is no failure
//     mode: any snapshot, including an empty one, yields a well-formed Info.
//   - Degrees count segment endpoints, so a self-loop contributes 2 to its
//     node. Blocked segments and segments with a missing endpoint contribute
//     nothing anywhere.
//   - Empty and single-node snapshots count as connected (0 and 1 components
//     respectively), matching the convention the structural analyzers rely on.
//
// Determinism:
//
//   - Component members are sorted, and components are ordered by their
//     smallest member, so equal snapshots always produce identical reports.
//
// Complexity: O(V + E log E) time (dominated by building the sorted
// adjacency view), O(V + E) space.
//
// The structure package reuses Info for its connectivity gates; an editor
// typically calls Analyze once per edit to refresh degree badges and
// component highlighting.
package connectivity
