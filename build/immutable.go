package build

import (
	"slices"

	"github.com/arborlab/arbor/node"
)

// Immutable is the value-semantics builder: every call returns a new
// builder holding a copied state record, so a builder may be forked
// into independent continuations. Stage order is checked at Build
// rather than by the type system.
type Immutable struct {
	st           State
	structureSet bool
	validators   []Validator
}

func NewImmutable() Immutable {
	return Immutable{}
}

func (b Immutable) fork() Immutable {
	b.st = b.st.fork()
	b.validators = slices.Clone(b.validators)
	return b
}

func (b Immutable) Name(name string) Immutable {
	b = b.fork()
	b.st.Name = name
	return b
}

func (b Immutable) AsComposite() Immutable {
	b = b.fork()
	b.st.Composite = true
	b.structureSet = true
	return b
}

func (b Immutable) AsLeaf() Immutable {
	b = b.fork()
	b.st.Composite = false
	b.structureSet = true
	return b
}

func (b Immutable) Description(d string) Immutable {
	b = b.fork()
	b.st.Description = d
	return b
}

func (b Immutable) Capacity(n int) Immutable {
	b = b.fork()
	b.st.Capacity = n
	return b
}

func (b Immutable) Meta(key, value string) Immutable {
	b = b.fork()
	b.st.Meta = append(b.st.Meta, MetaEntry{Key: key, Value: value})
	return b
}

func (b Immutable) Prototype(n node.Node) Immutable {
	b = b.fork()
	b.st.Prototype = n
	return b
}

func (b Immutable) Validate(v Validator) Immutable {
	b = b.fork()
	b.validators = append(b.validators, v)
	return b
}

func (b Immutable) ValidateExpr(src string) Immutable {
	return b.Validate(ExprValidator(src))
}

// Build fails with ErrNoStructure if the chain never chose composite or
// leaf kind; otherwise it behaves like the mutable FinalStage.
func (b Immutable) Build() (node.Node, error) {
	if !b.structureSet {
		return nil, ErrNoStructure
	}
	st := b.st.fork()
	return construct(&st, b.validators)
}
