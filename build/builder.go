package build

import "github.com/arborlab/arbor/node"

// New starts the mutable staged chain. Each stage is a distinct type
// exposing only the operations valid at that point, so skipping a
// required stage does not compile. The chain is single-use: later calls
// observe earlier ones.
func New() *NameStage {
	return &NameStage{}
}

// NameStage requires a name before anything else.
type NameStage struct{}

func (s *NameStage) Name(name string) *StructureStage {
	return &StructureStage{st: State{Name: name}}
}

// StructureStage requires choosing the structural kind.
type StructureStage struct {
	st State
}

func (s *StructureStage) AsComposite() *SettingsStage {
	s.st.Composite = true
	return &SettingsStage{st: s.st}
}

func (s *StructureStage) AsLeaf() *SettingsStage {
	s.st.Composite = false
	return &SettingsStage{st: s.st}
}

// SettingsStage accepts any number of optional settings, then Ready or
// Build.
type SettingsStage struct {
	st         State
	validators []Validator
}

func (s *SettingsStage) Description(d string) *SettingsStage {
	s.st.Description = d
	return s
}

func (s *SettingsStage) Capacity(n int) *SettingsStage {
	s.st.Capacity = n
	return s
}

func (s *SettingsStage) Meta(key, value string) *SettingsStage {
	s.st.Meta = append(s.st.Meta, MetaEntry{Key: key, Value: value})
	return s
}

// Prototype supplies the leaf payload: Build clones it. Required for
// leaf kind, ignored for composites.
func (s *SettingsStage) Prototype(n node.Node) *SettingsStage {
	s.st.Prototype = n
	return s
}

func (s *SettingsStage) Validate(v Validator) *SettingsStage {
	s.validators = append(s.validators, v)
	return s
}

// ValidateExpr registers an expr-language predicate over the builder
// state; see ExprValidator.
func (s *SettingsStage) ValidateExpr(src string) *SettingsStage {
	return s.Validate(ExprValidator(src))
}

func (s *SettingsStage) Ready() *FinalStage {
	return &FinalStage{st: s.st, validators: s.validators}
}

// Build skips the explicit final stage.
func (s *SettingsStage) Build() (node.Node, error) {
	return s.Ready().Build()
}

// FinalStage produces the configured node.
type FinalStage struct {
	st         State
	validators []Validator
}

// Build runs validators in registration order; the first failure aborts
// construction. A leaf build without a prototype fails with
// ErrNoComponentType.
func (f *FinalStage) Build() (node.Node, error) {
	return construct(&f.st, f.validators)
}
