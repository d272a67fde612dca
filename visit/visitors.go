package visit

import (
	"fmt"

	"github.com/arborlab/arbor/debug"
	"github.com/arborlab/arbor/node"
)

// Number constrains leaf payloads the numeric visitors understand.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Accumulate sums Leaf[T] values. Visiting a leaf of any other payload
// type is a structural error.
type Accumulate[T Number] struct {
	sum T
}

func (a *Accumulate[T]) VisitLeaf(l node.Valuer) error {
	leaf, ok := l.(*node.Leaf[T])
	if !ok {
		return fmt.Errorf("%w: %s", ErrLeafType, TypeName(l))
	}
	a.sum += leaf.Value()
	return nil
}

func (a *Accumulate[T]) VisitComposite(c *node.Composite) error {
	return Descend(c, a)
}

func (a *Accumulate[T]) Result() T { return a.sum }

func (a *Accumulate[T]) Reset() {
	var zero T
	a.sum = zero
}

// Average tracks the running sum and count of Leaf[T] values.
type Average[T Number] struct {
	sum   T
	count int
}

func (a *Average[T]) VisitLeaf(l node.Valuer) error {
	leaf, ok := l.(*node.Leaf[T])
	if !ok {
		return fmt.Errorf("%w: %s", ErrLeafType, TypeName(l))
	}
	a.sum += leaf.Value()
	a.count++
	return nil
}

func (a *Average[T]) VisitComposite(c *node.Composite) error {
	return Descend(c, a)
}

func (a *Average[T]) Result() float64 {
	if a.count == 0 {
		return 0
	}
	return float64(a.sum) / float64(a.count)
}

func (a *Average[T]) Sum() T { return a.sum }

func (a *Average[T]) Count() int { return a.count }

func (a *Average[T]) Reset() {
	var zero T
	a.sum = zero
	a.count = 0
}

// NodeCounter counts every node, leaf or composite.
type NodeCounter struct {
	count int
}

func (n *NodeCounter) VisitLeaf(node.Valuer) error {
	n.count++
	return nil
}

func (n *NodeCounter) VisitComposite(c *node.Composite) error {
	n.count++
	return Descend(c, n)
}

func (n *NodeCounter) Result() int { return n.count }

func (n *NodeCounter) Reset() { n.count = 0 }

// DepthCalculator tracks the maximum depth seen: the counter goes up on
// entry and back down on exit. Applying it to a root composite reports
// that composite as depth 1.
type DepthCalculator struct {
	depth int
	max   int
}

func (d *DepthCalculator) VisitLeaf(node.Valuer) error {
	if d.depth+1 > d.max {
		d.max = d.depth + 1
	}
	return nil
}

func (d *DepthCalculator) VisitComposite(c *node.Composite) error {
	d.depth++
	if d.depth > d.max {
		d.max = d.depth
	}
	if debug.Visit() {
		debug.Logf("visit: enter %q depth=%d\n", c.Name(), d.depth)
	}
	err := Descend(c, d)
	d.depth--
	return err
}

func (d *DepthCalculator) Result() int { return d.max }

func (d *DepthCalculator) Reset() {
	d.depth = 0
	d.max = 0
}

// CollectValues gathers every Leaf[T] payload in visit order. Leaves of
// other payload types are skipped rather than rejected.
type CollectValues[T any] struct {
	vals []T
}

func (cv *CollectValues[T]) VisitLeaf(l node.Valuer) error {
	if leaf, ok := l.(*node.Leaf[T]); ok {
		cv.vals = append(cv.vals, leaf.Value())
	}
	return nil
}

func (cv *CollectValues[T]) VisitComposite(c *node.Composite) error {
	return Descend(c, cv)
}

func (cv *CollectValues[T]) Values() []T { return cv.vals }

func (cv *CollectValues[T]) Reset() { cv.vals = nil }
