package render

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/arborlab/arbor/node"
)

type Attr int

const (
	NameAttr Attr = iota
	ValueAttr
	PunctAttr
	MetaAttr
)

type colorable struct {
	Kind node.Kind
	Attr Attr
}

// Palette maps node kind and attribute to a sprintf-style colorizer.
type Palette struct {
	Default func(string, ...any) string
	Map     map[colorable]func(string, ...any) string
}

func NewPalette() *Palette {
	p := &Palette{
		Default: func(s string, args ...any) string { return s },
		Map:     map[colorable]func(string, ...any) string{},
	}
	p.Map[colorable{Kind: node.KindComposite, Attr: NameAttr}] = color.RGB(196, 96, 16).SprintfFunc()
	p.Map[colorable{Kind: node.KindComposite, Attr: PunctAttr}] = color.RGB(255, 0, 196).SprintfFunc()
	p.Map[colorable{Kind: node.KindComposite, Attr: MetaAttr}] = color.BlueString
	p.Map[colorable{Kind: node.KindLeaf, Attr: ValueAttr}] = color.RGB(128, 216, 236).SprintfFunc()
	return p
}

func (p *Palette) paint(k node.Kind, a Attr, text string) string {
	f, ok := p.Map[colorable{Kind: k, Attr: a}]
	if !ok {
		f = p.Default
	}
	return f("%s", text)
}

// AutoColors enables the default palette only when w is a terminal.
func AutoColors(w io.Writer) Option {
	return func(s *state) {
		f, ok := w.(*os.File)
		if !ok {
			return
		}
		if isatty.IsTerminal(f.Fd()) {
			s.palette = NewPalette()
		}
	}
}
