// Package visit implements double-dispatch visitors over composite
// trees: Apply routes a node to the handler for its held alternative,
// and composite handlers recurse through Descend. Each visitor carries
// its own combination rule for merging per-child results.
package visit

import (
	"fmt"

	"github.com/arborlab/arbor/node"
)

// Visitor handles the two sides of the node alternative set.
type Visitor interface {
	VisitLeaf(l node.Valuer) error
	VisitComposite(c *node.Composite) error
}

// Apply dispatches n to the visitor handler for its held alternative.
func Apply(n node.Node, v Visitor) error {
	switch t := n.(type) {
	case *node.Composite:
		return v.VisitComposite(t)
	case node.Valuer:
		return v.VisitLeaf(t)
	}
	return fmt.Errorf("visit: unhandled node kind %s", n.Kind())
}

// Descend applies v to every child of c in storage order. Composite
// handlers call this to recurse.
func Descend(c *node.Composite, v Visitor) error {
	for _, ch := range c.Children() {
		if err := Apply(ch, v); err != nil {
			return err
		}
	}
	return nil
}

// TypeName is the dynamic-dispatch key for a node's concrete type,
// e.g. "*node.Leaf[int]" or "*node.Composite".
func TypeName(n node.Node) string {
	return fmt.Sprintf("%T", n)
}
