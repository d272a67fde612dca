// Package traverse provides cursor-based iteration over composite trees
// using an explicit work-list: a stack for depth-first orders, a queue
// for breadth-first.
//
// A Cursor holds non-owning references into the live tree. Its lifetime
// must not exceed the root composite's, and the tree must not be mutated
// while the cursor is in use; neither is detected.
package traverse

import (
	"github.com/arborlab/arbor/debug"
	"github.com/arborlab/arbor/node"
)

type Order int

const (
	// DepthFirstPre yields every node before its later siblings' subtrees.
	DepthFirstPre Order = iota
	// DepthFirstPost yields children before their parent.
	DepthFirstPost
	// BreadthFirst yields level by level, left to right.
	BreadthFirst
)

func (o Order) String() string {
	switch o {
	case DepthFirstPre:
		return "dfs-pre"
	case DepthFirstPost:
		return "dfs-post"
	case BreadthFirst:
		return "bfs"
	}
	return "<unknown order>"
}

type frame struct {
	n node.Node
	// expanded marks a postorder composite whose children are already on
	// the stack; popping it again yields it.
	expanded bool
}

// Cursor steps through the descendants of a root composite. The root
// itself is not yielded; iteration starts at its direct children.
type Cursor struct {
	root  *node.Composite
	order Order
	stack []frame
	queue []node.Node
}

func New(root *node.Composite, order Order) *Cursor {
	c := &Cursor{root: root, order: order}
	c.seed()
	return c
}

func DFS(root *node.Composite) *Cursor {
	return New(root, DepthFirstPre)
}

func BFS(root *node.Composite) *Cursor {
	return New(root, BreadthFirst)
}

func (c *Cursor) Order() Order { return c.order }

func (c *Cursor) seed() {
	if c.root == nil || c.root.Len() == 0 {
		return
	}
	children := c.root.Children()
	switch c.order {
	case DepthFirstPre, DepthFirstPost:
		// Reversed, so the first child pops first.
		for i := len(children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, frame{n: children[i]})
		}
	case BreadthFirst:
		c.queue = append(c.queue, children...)
	}
	if debug.Traverse() {
		debug.Logf("traverse: seeded %q order=%s children=%d\n",
			c.root.Name(), c.order, len(children))
	}
}

func (c *Cursor) HasNext() bool {
	if c.order == BreadthFirst {
		return len(c.queue) > 0
	}
	return len(c.stack) > 0
}

// Next yields the next node in traversal order, or ErrExhausted when the
// work-list is drained. Callers are expected to check HasNext first.
func (c *Cursor) Next() (node.Node, error) {
	if !c.HasNext() {
		return nil, ErrExhausted
	}
	switch c.order {
	case DepthFirstPre:
		return c.nextPre(), nil
	case DepthFirstPost:
		return c.nextPost(), nil
	default:
		return c.nextBFS(), nil
	}
}

func (c *Cursor) nextPre() node.Node {
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if comp, ok := top.n.(*node.Composite); ok {
		children := comp.Children()
		for i := len(children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, frame{n: children[i]})
		}
	}
	return top.n
}

func (c *Cursor) nextPost() node.Node {
	for {
		top := &c.stack[len(c.stack)-1]
		comp, ok := top.n.(*node.Composite)
		if !ok || top.expanded || comp.Len() == 0 {
			n := top.n
			c.stack = c.stack[:len(c.stack)-1]
			return n
		}
		top.expanded = true
		children := comp.Children()
		for i := len(children) - 1; i >= 0; i-- {
			c.stack = append(c.stack, frame{n: children[i]})
		}
	}
}

func (c *Cursor) nextBFS() node.Node {
	n := c.queue[0]
	c.queue = c.queue[1:]
	if comp, ok := n.(*node.Composite); ok {
		c.queue = append(c.queue, comp.Children()...)
	}
	return n
}

// ForEach drains the cursor, applying op to every yielded node in
// traversal order. The cursor is consumed; call Reset to run it again.
func (c *Cursor) ForEach(op func(node.Node)) {
	for c.HasNext() {
		n, err := c.Next()
		if err != nil {
			return
		}
		op(n)
	}
}

// Reset clears the work-list and re-seeds from the root.
func (c *Cursor) Reset() {
	c.stack = c.stack[:0]
	c.queue = c.queue[:0]
	c.seed()
}

// SetOrder switches the traversal order and resets the cursor.
func (c *Cursor) SetOrder(order Order) {
	c.order = order
	c.stack = nil
	c.queue = nil
	c.seed()
}

// Collect drains the cursor, gathering the transform of every yielded
// node in traversal order.
func Collect[T any](c *Cursor, transform func(node.Node) T) []T {
	var res []T
	c.ForEach(func(n node.Node) {
		res = append(res, transform(n))
	})
	return res
}
