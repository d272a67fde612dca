package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/encode"
	"github.com/arborlab/arbor/render"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y     bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`
	Color bool `cli:"name=color desc='render with color'"`
	Meta  bool `cli:"name=meta desc='render metadata lines'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) encOpts() []encode.Option {
	if cfg.J {
		return []encode.Option{encode.WithFormat(encode.JSON)}
	}
	return []encode.Option{encode.WithFormat(encode.YAML)}
}

func (cfg *MainConfig) renderOpts(w io.Writer) []render.Option {
	res := []render.Option{render.ShowMeta(cfg.Meta)}
	if cfg.Color {
		return append(res, render.Colors(render.NewPalette()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, render.Colors(render.NewPalette()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type DumpConfig struct {
	*MainConfig

	Dump *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='expression filtering leaves, e.g. value > 10'"`

	Stats *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Quiet bool `cli:"name=q desc='suppress output, exit status only'"`

	Diff *cli.Command
}

type BuildConfig struct {
	*MainConfig

	Name     string `cli:"name=name desc='node name'"`
	Leaf     bool   `cli:"name=leaf desc='build a leaf instead of a composite'"`
	Kind     string `cli:"name=kind desc='leaf kind: leaf-int, leaf-float, leaf-string, leaf-bool'"`
	Desc     string `cli:"name=desc desc='description metadata'"`
	Capacity int    `cli:"name=cap desc='reserve child capacity'"`

	Meta  []string
	Check []string

	Build *cli.Command
}
