package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/treediff"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := loadTree(args[0])
	if err != nil {
		return err
	}
	b, err := loadTree(args[1])
	if err != nil {
		return err
	}
	if treediff.Equal(a, b) {
		return nil
	}
	if !cfg.Quiet {
		diffs, err := treediff.Diff(a, b)
		if err != nil {
			return err
		}
		out := treediff.Text(diffs)
		if colorTerm(cfg, cc.Out) {
			out = treediff.Pretty(diffs)
		}
		if _, err := io.WriteString(cc.Out, out); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}

func colorTerm(cfg *DiffConfig, w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
