package node

import (
	"maps"
	"slices"
	"strings"
)

// Composite is a named node owning an ordered sequence of children.
// Children are appended over time and only go away with the whole
// container; there is no removal operation.
type Composite struct {
	name     string
	meta     map[string]string
	children []Node
}

func NewComposite(name string) *Composite {
	return &Composite{name: name}
}

func (c *Composite) Kind() Kind { return KindComposite }

func (c *Composite) Name() string { return c.name }

func (c *Composite) SetName(name string) { c.name = name }

// Add appends children in order. A nil child violates the tree contract:
// every slot holds a valid alternative.
func (c *Composite) Add(children ...Node) {
	for _, ch := range children {
		if ch == nil {
			panic("node: nil child added to composite")
		}
		c.children = append(c.children, ch)
	}
}

// Children returns the underlying child storage, in insertion order.
func (c *Composite) Children() []Node { return c.children }

func (c *Composite) Len() int { return len(c.children) }

// Grow pre-sizes child storage for at least n more appends.
func (c *Composite) Grow(n int) {
	c.children = slices.Grow(c.children, n)
}

func (c *Composite) Meta(key string) (string, bool) {
	v, ok := c.meta[key]
	return v, ok
}

func (c *Composite) SetMeta(key, value string) {
	if c.meta == nil {
		c.meta = map[string]string{}
	}
	c.meta[key] = value
}

func (c *Composite) MetaKeys() []string {
	return slices.Sorted(maps.Keys(c.meta))
}

// Clone deep-copies the name, metadata and the entire child sequence,
// each child via its own Clone.
func (c *Composite) Clone() Node {
	dst := &Composite{name: c.name}
	if c.meta != nil {
		dst.meta = maps.Clone(c.meta)
	}
	if len(c.children) > 0 {
		dst.children = make([]Node, len(c.children))
		for i, ch := range c.children {
			dst.children[i] = ch.Clone()
		}
	}
	return dst
}

// Traverse applies op to the composite itself, then recursively to every
// child: composites recurse, leaves get op once. This is the plain
// recursive walk; package traverse provides cursor-based iteration.
func (c *Composite) Traverse(op func(Node)) {
	op(c)
	for _, ch := range c.children {
		if cc, ok := ch.(*Composite); ok {
			cc.Traverse(op)
			continue
		}
		op(ch)
	}
}

func (c *Composite) String() string {
	var b strings.Builder
	c.writeTo(&b, 0)
	return b.String()
}

func (c *Composite) writeTo(b *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	b.WriteString(indent)
	b.WriteString(c.name)
	b.WriteString(" {\n")
	for _, ch := range c.children {
		if cc, ok := ch.(*Composite); ok {
			cc.writeTo(b, depth+1)
			b.WriteByte('\n')
			continue
		}
		b.WriteString(indent)
		b.WriteString("  ")
		b.WriteString(ch.String())
		b.WriteByte('\n')
	}
	b.WriteString(indent)
	b.WriteString("}")
}

func (c *Composite) sealed() {}
