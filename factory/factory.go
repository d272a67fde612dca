// Package factory makes nodes from registered kind names, for callers
// that pick node types at runtime.
package factory

import (
	"fmt"
	"sort"

	"github.com/arborlab/arbor/node"
)

type Factory struct {
	makers map[string]func() node.Node
}

func New() *Factory {
	return &Factory{makers: map[string]func() node.Node{}}
}

// Default returns a factory with the built-in node kinds registered:
// composite plus int, float, string and bool leaves.
func Default() *Factory {
	f := New()
	f.Register("composite", func() node.Node { return node.NewComposite("") })
	f.Register("leaf-int", func() node.Node { return node.NewLeaf(0) })
	f.Register("leaf-float", func() node.Node { return node.NewLeaf(0.0) })
	f.Register("leaf-string", func() node.Node { return node.NewLeaf("") })
	f.Register("leaf-bool", func() node.Node { return node.NewLeaf(false) })
	return f
}

// Register binds kind to a constructor. Re-registering a kind is an
// error so callers cannot silently shadow each other.
func (f *Factory) Register(kind string, make func() node.Node) error {
	if make == nil {
		return fmt.Errorf("factory: nil constructor for %q", kind)
	}
	if _, ok := f.makers[kind]; ok {
		return fmt.Errorf("factory: %q already registered", kind)
	}
	f.makers[kind] = make
	return nil
}

func (f *Factory) New(kind string) (node.Node, error) {
	make, ok := f.makers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return make(), nil
}

// Kinds lists registered kind names, sorted.
func (f *Factory) Kinds() []string {
	out := make([]string, 0, len(f.makers))
	for k := range f.makers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
