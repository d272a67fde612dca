// Package node provides the core tree model for arbor: a closed set of
// node alternatives (leaves and composites) forming recursive,
// single-owner trees.
//
// # Node Structure
//
// A tree is built from two alternatives:
//
//   - Leaf[T]: holds a single value of type T, no children
//   - Composite: holds a name, optional string metadata, and an ordered
//     sequence of child nodes
//
// The Node interface is sealed: the set of alternatives is fixed at
// compile time, so dispatching code may type-switch over *Composite and
// Valuer (the leaf side) exhaustively. Attempting to place anything else
// in a tree is a compile-time error.
//
// # Creating Nodes
//
// Use the constructors:
//
//	l := node.NewLeaf(42)
//	c := node.NewComposite("root")
//	c.Add(l, node.NewLeaf("hello"))
//
// Child insertion order is significant: rendering and traversal both
// follow append order.
//
// # Ownership
//
// A composite exclusively owns its children. Clone performs a deep copy;
// mutating a clone's children never affects the original. Leaf payloads
// are copied by value, so payload types should have value semantics.
//
// # Comparison and Hashing
//
// Compare defines a total order over trees (leaves rank before
// composites) and Hash produces a structural fingerprint, both useful
// for set-equality checks over traversal results.
//
// # Thread Safety
//
// Nodes are not thread-safe. Trees are single-owner values; synchronize
// or clone if you must share them.
//
// # Related Packages
//
//   - github.com/arborlab/arbor/traverse - explicit work-list cursors
//   - github.com/arborlab/arbor/visit - double-dispatch visitors
//   - github.com/arborlab/arbor/build - staged construction
//   - github.com/arborlab/arbor/encode - document form (YAML/JSON)
package node
