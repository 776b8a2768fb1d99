// Package network is the mutable road-network model behind the editor.
//
// A Network owns the live set of junctions and road segments while the user
// edits: adding and removing junctions, drawing and erasing segments,
// blocking segments, adjusting weights (including negative tolls), and moving
// the origin and destination markers between junctions. The analysis packages
// never see a Network; after each edit the caller takes Snapshot() and hands
// the frozen value to route and structure.
//
// # Key features
//
//   - Generated identity: empty IDs are filled in by the configured
//     generator, UUIDs by default (WithIDGenerator overrides, e.g. for
//     deterministic tests).
//   - Marker discipline: at most one junction holds the Origin role and at
//     most one holds Destination; assigning a marker moves it, displacing
//     whatever role its target held.
//   - Cascade removal: removing a junction erases every segment touching it.
//   - Deterministic snapshots: nodes and edges come out sorted by ID, so
//     repeated snapshots of an unchanged network are identical.
//
// # Concurrency
//
// All methods are safe for concurrent use behind a single RWMutex. Snapshot
// returns deep copies, so a held snapshot never observes later edits.
//
// # Errors
//
//   - ErrEmptyID       - an operation that needs an ID got "".
//   - ErrDuplicateID   - explicit ID already names a junction or segment.
//   - ErrNodeNotFound  - junction ID absent.
//   - ErrRoadNotFound  - segment ID absent.
//
// See also: core (the frozen snapshot model), route, structure.
package network
