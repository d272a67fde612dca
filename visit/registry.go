package visit

import (
	"fmt"

	"github.com/arborlab/arbor/node"
)

// Registry dispatches dynamically on the concrete type name of each
// visited node. A miss is a runtime error, unlike the statically typed
// visitors; callers must register a handler for every type they visit.
type Registry struct {
	handlers map[string]func(node.Node) error
	history  []string
	track    bool
}

func NewRegistry() *Registry {
	return &Registry{handlers: map[string]func(node.Node) error{}}
}

// Handle registers a handler under a type name as produced by TypeName.
func (r *Registry) Handle(typeName string, h func(node.Node) error) {
	r.handlers[typeName] = h
}

// HandleFor registers a handler under the concrete type of example,
// saving callers from spelling out generic type names.
func (r *Registry) HandleFor(example node.Node, h func(node.Node) error) {
	r.Handle(TypeName(example), h)
}

// Visit dispatches n to its registered handler and recurses into
// composite children. A missing handler fails with ErrNoHandler.
func (r *Registry) Visit(n node.Node) error {
	name := TypeName(n)
	if r.track {
		r.history = append(r.history, name)
	}
	h, ok := r.handlers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoHandler, name)
	}
	if err := h(n); err != nil {
		return err
	}
	if c, ok := n.(*node.Composite); ok {
		for _, ch := range c.Children() {
			if err := r.Visit(ch); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Registry) EnableTracking() { r.track = true }

func (r *Registry) DisableTracking() { r.track = false }

func (r *Registry) History() []string { return r.history }

func (r *Registry) ClearHistory() { r.history = nil }
