package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/arborlab/arbor/encode"
	"github.com/arborlab/arbor/node"
	"github.com/arborlab/arbor/visit"
)

type treeStats struct {
	Nodes  int     `yaml:"nodes"`
	Depth  int     `yaml:"depth"`
	Values int     `yaml:"values"`
	Sum    float64 `yaml:"sum"`
	Avg    float64 `yaml:"avg"`
}

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		return err
	}
	var where *vm.Program
	if cfg.Where != "" {
		where, err = expr.Compile(cfg.Where, expr.AsBool())
		if err != nil {
			return fmt.Errorf("%w: bad -where expression: %w", cli.ErrUsage, err)
		}
	}
	if len(args) == 0 {
		root, err := decodeTree(cc)
		if err != nil {
			return err
		}
		return statsTree(cfg, cc, where, root)
	}
	for i, file := range args {
		root, err := loadTree(file)
		if err != nil {
			return err
		}
		if err := statsTree(cfg, cc, where, root); err != nil {
			return err
		}
		if i < len(args)-1 {
			cc.Out.Write([]byte("---\n"))
		}
	}
	return nil
}

func decodeTree(cc *cli.Context) (node.Node, error) {
	return encode.Decode(cc.In)
}

func statsTree(cfg *StatsConfig, cc *cli.Context, where *vm.Program, root node.Node) error {
	counter := &visit.NodeCounter{}
	depth := &visit.DepthCalculator{}
	if err := visit.Apply(root, counter); err != nil {
		return err
	}
	if err := visit.Apply(root, depth); err != nil {
		return err
	}
	st := &treeStats{Nodes: counter.Result(), Depth: depth.Result()}
	if err := sumLeaves(root, where, st); err != nil {
		return err
	}
	if st.Values > 0 {
		st.Avg = st.Sum / float64(st.Values)
	}
	out, err := yaml.Marshal(st)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}

// sumLeaves totals numeric leaves, filtered by the -where expression
// when one is given. The expression sees value and type.
func sumLeaves(root node.Node, where *vm.Program, st *treeStats) error {
	reg := visit.NewRegistry()
	reg.HandleFor(node.NewComposite(""), func(node.Node) error { return nil })
	reg.HandleFor(node.NewLeaf(""), func(node.Node) error { return nil })
	reg.HandleFor(node.NewLeaf(false), func(node.Node) error { return nil })
	take := func(v float64, typ string) error {
		if where != nil {
			out, err := expr.Run(where, map[string]any{"value": v, "type": typ})
			if err != nil {
				return err
			}
			if !out.(bool) {
				return nil
			}
		}
		st.Values++
		st.Sum += v
		return nil
	}
	reg.HandleFor(node.NewLeaf(0), func(n node.Node) error {
		return take(float64(n.(*node.Leaf[int]).Value()), "int")
	})
	reg.HandleFor(node.NewLeaf(0.0), func(n node.Node) error {
		return take(n.(*node.Leaf[float64]).Value(), "float")
	})
	return reg.Visit(root)
}
