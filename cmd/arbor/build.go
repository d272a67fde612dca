package main

import (
	"fmt"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/build"
	"github.com/arborlab/arbor/factory"
	"github.com/arborlab/arbor/render"
)

func buildNode(cfg *BuildConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Build.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: build takes no positional args, got %v", cli.ErrUsage, args)
	}
	if cfg.Name == "" {
		return fmt.Errorf("%w: -name is required", cli.ErrUsage)
	}
	st := build.New().Name(cfg.Name)
	var settings *build.SettingsStage
	if cfg.Leaf {
		settings = st.AsLeaf()
		kind := cfg.Kind
		if kind == "" {
			kind = "leaf-string"
		}
		proto, err := factory.Default().New(kind)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		settings = settings.Prototype(proto)
	} else {
		settings = st.AsComposite()
	}
	if cfg.Desc != "" {
		settings = settings.Description(cfg.Desc)
	}
	if cfg.Capacity > 0 {
		settings = settings.Capacity(cfg.Capacity)
	}
	for _, m := range cfg.Meta {
		k, v, ok := strings.Cut(m, "=")
		if !ok {
			return fmt.Errorf("%w: -m wants key=value, got %q", cli.ErrUsage, m)
		}
		settings = settings.Meta(k, v)
	}
	for _, src := range cfg.Check {
		settings = settings.ValidateExpr(src)
	}
	n, err := settings.Build()
	if err != nil {
		return err
	}
	return render.Render(n, cc.Out, cfg.renderOpts(cc.Out)...)
}
