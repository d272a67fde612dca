package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/encode"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return dumpReader(cfg, cc.Out, cc.In)
	}
	for i, file := range args {
		if err := dumpFile(cfg, cc.Out, file); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func dumpFile(cfg *DumpConfig, w io.Writer, file string) error {
	f, err := openArg(file)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := dumpReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

// dumpReader normalizes a document: decode, then re-encode in the
// requested output format.
func dumpReader(cfg *DumpConfig, w io.Writer, r io.Reader) error {
	root, err := encode.Decode(r)
	if err != nil {
		return err
	}
	return encode.Encode(root, w, cfg.encOpts()...)
}
