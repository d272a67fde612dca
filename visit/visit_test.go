package visit

import (
	"errors"
	"testing"

	"github.com/arborlab/arbor/node"
	"github.com/arborlab/arbor/traverse"
)

func intTree(name string, vals ...int) *node.Composite {
	c := node.NewComposite(name)
	for _, v := range vals {
		c.Add(node.NewLeaf(v))
	}
	return c
}

func TestAccumulate(t *testing.T) {
	root := intTree("Root", 10, 20)

	var acc Accumulate[int]
	if err := Apply(root, &acc); err != nil {
		t.Fatal(err)
	}
	if acc.Result() != 30 {
		t.Errorf("sum = %d, want 30", acc.Result())
	}

	acc.Reset()
	if acc.Result() != 0 {
		t.Error("reset did not clear the sum")
	}
}

func TestAccumulateNested(t *testing.T) {
	root := intTree("root", 1)
	root.Add(intTree("inner", 2, 3))

	var acc Accumulate[int]
	if err := Apply(root, &acc); err != nil {
		t.Fatal(err)
	}
	if acc.Result() != 6 {
		t.Errorf("sum = %d, want 6", acc.Result())
	}
}

func TestAccumulateTypeMismatch(t *testing.T) {
	root := node.NewComposite("root")
	root.Add(node.NewLeaf("not a number"))

	var acc Accumulate[int]
	err := Apply(root, &acc)
	if !errors.Is(err, ErrLeafType) {
		t.Fatalf("expected ErrLeafType, got %v", err)
	}
}

func TestAverage(t *testing.T) {
	root := intTree("Root", 10, 20)

	var avg Average[int]
	if err := Apply(root, &avg); err != nil {
		t.Fatal(err)
	}
	if avg.Result() != 15.0 {
		t.Errorf("average = %v, want 15.0", avg.Result())
	}
	if avg.Count() != 2 {
		t.Errorf("count = %d, want 2", avg.Count())
	}
	if avg.Sum() != 30 {
		t.Errorf("sum = %d, want 30", avg.Sum())
	}
}

func TestAverageEmpty(t *testing.T) {
	var avg Average[int]
	if err := Apply(node.NewComposite("empty"), &avg); err != nil {
		t.Fatal(err)
	}
	if avg.Result() != 0 {
		t.Errorf("average of nothing = %v, want 0", avg.Result())
	}
}

func TestNodeCounter(t *testing.T) {
	root := intTree("root", 1, 2)
	root.Add(intTree("inner", 3))

	var nc NodeCounter
	if err := Apply(root, &nc); err != nil {
		t.Fatal(err)
	}
	// root + 2 leaves + inner + 1 leaf
	if nc.Result() != 5 {
		t.Errorf("count = %d, want 5", nc.Result())
	}
}

func TestDepthCalculator(t *testing.T) {
	tests := []struct {
		name     string
		build    func() *node.Composite
		expected int
	}{
		{"flat", func() *node.Composite { return intTree("r", 1) }, 2},
		{"empty", func() *node.Composite { return node.NewComposite("r") }, 1},
		{"nested", func() *node.Composite {
			r := intTree("r", 1)
			inner := intTree("inner", 2)
			deeper := intTree("deeper", 3)
			inner.Add(deeper)
			r.Add(inner)
			return r
		}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dc DepthCalculator
			if err := Apply(tt.build(), &dc); err != nil {
				t.Fatal(err)
			}
			if dc.Result() != tt.expected {
				t.Errorf("depth = %d, want %d", dc.Result(), tt.expected)
			}
		})
	}
}

func TestCollectValues(t *testing.T) {
	root := intTree("root", 1, 2)
	root.Add(node.NewLeaf("skipped"))
	root.Add(intTree("inner", 3))

	var cv CollectValues[int]
	if err := Apply(root, &cv); err != nil {
		t.Fatal(err)
	}
	want := []int{1, 2, 3}
	got := cv.Values()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("value %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

// Both traversal modes must agree on leaf content.
func TestSumIndependentOfTraversalOrder(t *testing.T) {
	root := node.NewComposite("root")
	inner := intTree("inner", 1)
	root.Add(inner, node.NewLeaf(2))

	for _, order := range []traverse.Order{traverse.DepthFirstPre, traverse.BreadthFirst} {
		sum := 0
		traverse.New(root, order).ForEach(func(n node.Node) {
			if l, ok := n.(*node.Leaf[int]); ok {
				sum += l.Value()
			}
		})
		if sum != 3 {
			t.Errorf("order %s: sum = %d, want 3", order, sum)
		}
	}
}
