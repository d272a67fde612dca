// Package render writes trees as indented text, optionally colored for
// terminals. Output is a debug affordance, not a stable format; the
// plain form matches node.Node's String.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arborlab/arbor/node"
)

type state struct {
	indent   int
	showMeta bool
	palette  *Palette
}

type Option func(*state)

func Indent(n int) Option {
	return func(s *state) { s.indent = n }
}

func ShowMeta(v bool) Option {
	return func(s *state) { s.showMeta = v }
}

func Colors(p *Palette) Option {
	return func(s *state) { s.palette = p }
}

// Render writes n to w, one child per line in insertion order.
func Render(n node.Node, w io.Writer, opts ...Option) error {
	s := &state{indent: 2}
	for _, opt := range opts {
		opt(s)
	}
	if err := render(n, w, s, 0); err != nil {
		return err
	}
	return writeString(w, "\n")
}

func render(n node.Node, w io.Writer, s *state, depth int) error {
	pad := strings.Repeat(" ", s.indent*depth)
	switch t := n.(type) {
	case *node.Composite:
		head := pad + s.paint(node.KindComposite, NameAttr, t.Name()) +
			s.paint(node.KindComposite, PunctAttr, " {")
		if err := writeString(w, head+"\n"); err != nil {
			return err
		}
		if s.showMeta {
			for _, k := range t.MetaKeys() {
				v, _ := t.Meta(k)
				line := pad + strings.Repeat(" ", s.indent) +
					s.paint(node.KindComposite, MetaAttr, fmt.Sprintf("# %s=%s", k, v))
				if err := writeString(w, line+"\n"); err != nil {
					return err
				}
			}
		}
		for _, ch := range t.Children() {
			if err := render(ch, w, s, depth+1); err != nil {
				return err
			}
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		return writeString(w, pad+s.paint(node.KindComposite, PunctAttr, "}"))
	case node.Valuer:
		return writeString(w, pad+s.paint(node.KindLeaf, ValueAttr, t.String()))
	}
	return fmt.Errorf("render: unhandled node kind %s", n.Kind())
}

func (s *state) paint(k node.Kind, a Attr, text string) string {
	if s.palette == nil {
		return text
	}
	return s.palette.paint(k, a, text)
}

func writeString(w io.Writer, v string) error {
	_, err := io.WriteString(w, v)
	return err
}
