// Package build provides staged construction of composites and leaves.
// The mutable chain enforces required configuration order through the
// type system: a name, then the structural kind, then optional
// settings, then Build. The Immutable flavor has value semantics and
// may be forked freely, at the cost of copying its state on every call.
package build

import (
	"fmt"
	"slices"

	"github.com/arborlab/arbor/debug"
	"github.com/arborlab/arbor/node"
)

// State is the accumulated configuration a builder carries between
// stages. Validators receive it read-only before Build constructs
// anything.
type State struct {
	Name        string
	Composite   bool
	Description string
	Capacity    int
	Meta        []MetaEntry
	Prototype   node.Node
}

type MetaEntry struct {
	Key, Value string
}

// Validator inspects builder state prior to construction. A non-nil
// error aborts Build; no partial object is produced.
type Validator func(*State) error

func construct(st *State, validators []Validator) (node.Node, error) {
	for _, v := range validators {
		if err := v(st); err != nil {
			return nil, fmt.Errorf("build %q: %w", st.Name, err)
		}
	}
	if debug.Build() {
		debug.Logf("build: %q composite=%t capacity=%d\n",
			st.Name, st.Composite, st.Capacity)
	}
	if st.Composite {
		c := node.NewComposite(st.Name)
		if st.Capacity > 0 {
			c.Grow(st.Capacity)
		}
		if st.Description != "" {
			c.SetMeta("description", st.Description)
		}
		for _, m := range st.Meta {
			c.SetMeta(m.Key, m.Value)
		}
		return c, nil
	}
	if st.Prototype == nil {
		return nil, fmt.Errorf("build %q: %w", st.Name, ErrNoComponentType)
	}
	return st.Prototype.Clone(), nil
}

func (st *State) fork() State {
	cp := *st
	cp.Meta = slices.Clone(st.Meta)
	return cp
}
