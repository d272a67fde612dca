package node

// Node is a single element of a tree: a leaf holding one value, or a
// composite holding an ordered sequence of children. The interface is
// sealed; the alternative set is closed at compile time.
type Node interface {
	Kind() Kind
	// Clone returns a deep, independently owned copy.
	Clone() Node
	// String renders a plain human-readable form. The output is a debug
	// affordance, not a stable format.
	String() string

	sealed()
}

// Valuer is the leaf side of the alternative set: every Leaf[T]
// implements it, exposing the payload without its static type.
type Valuer interface {
	Node
	Any() any
}
