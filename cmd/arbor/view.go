package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/encode"
	"github.com/arborlab/arbor/node"
	"github.com/arborlab/arbor/render"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	for i, file := range args {
		if err := viewFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	f, err := openArg(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	root, err := encode.Decode(r)
	if err != nil {
		return err
	}
	return render.Render(root, w, cfg.renderOpts(w)...)
}

// openArg treats "-" as stdin, matching the usual convention.
func openArg(file string) (*os.File, error) {
	if file == "-" {
		return os.Stdin, nil
	}
	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", file, err)
	}
	return f, nil
}

func loadTree(file string) (node.Node, error) {
	f, err := openArg(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := encode.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return root, nil
}
