package build

import (
	"errors"
	"testing"

	"github.com/arborlab/arbor/node"
)

func TestBuildComposite(t *testing.T) {
	n, err := New().
		Name("Root").
		AsComposite().
		Description("top level").
		Capacity(8).
		Meta("owner", "tests").
		Build()
	if err != nil {
		t.Fatal(err)
	}

	c, ok := n.(*node.Composite)
	if !ok {
		t.Fatalf("expected composite, got %T", n)
	}
	if c.Name() != "Root" {
		t.Errorf("name = %q", c.Name())
	}
	if d, _ := c.Meta("description"); d != "top level" {
		t.Errorf("description = %q", d)
	}
	if o, _ := c.Meta("owner"); o != "tests" {
		t.Errorf("owner = %q", o)
	}
	if c.Len() != 0 {
		t.Errorf("fresh composite has %d children", c.Len())
	}
}

func TestBuildLeaf(t *testing.T) {
	proto := node.NewLeaf(7)
	n, err := New().Name("seven").AsLeaf().Prototype(proto).Build()
	if err != nil {
		t.Fatal(err)
	}
	l, ok := n.(*node.Leaf[int])
	if !ok {
		t.Fatalf("expected int leaf, got %T", n)
	}
	if l.Value() != 7 {
		t.Errorf("value = %d", l.Value())
	}
	// The prototype is cloned, not shared.
	l.SetValue(8)
	if proto.Value() != 7 {
		t.Error("prototype mutated through built leaf")
	}
}

func TestBuildLeafWithoutPrototype(t *testing.T) {
	_, err := New().Name("empty").AsLeaf().Build()
	if !errors.Is(err, ErrNoComponentType) {
		t.Fatalf("expected ErrNoComponentType, got %v", err)
	}
}

func TestValidatorsRunInOrder(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	_, err := New().
		Name("x").
		AsComposite().
		Validate(func(*State) error { ran = append(ran, "first"); return nil }).
		Validate(func(*State) error { ran = append(ran, "second"); return boom }).
		Validate(func(*State) error { ran = append(ran, "third"); return nil }).
		Build()
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if len(ran) != 2 || ran[0] != "first" || ran[1] != "second" {
		t.Errorf("validator order: %v", ran)
	}
}

func TestExprValidator(t *testing.T) {
	tests := []struct {
		name string
		src  string
		ok   bool
	}{
		{"passes", `capacity > 0 && name == "x"`, true},
		{"rejects", `capacity > 100`, false},
		{"meta lookup", `meta["env"] == "test"`, true},
		{"bad syntax", `capacity >`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().
				Name("x").
				AsComposite().
				Capacity(4).
				Meta("env", "test").
				ValidateExpr(tt.src).
				Build()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
		})
	}
}

func TestReadyStage(t *testing.T) {
	final := New().Name("r").AsComposite().Ready()
	n, err := final.Build()
	if err != nil {
		t.Fatal(err)
	}
	if n.Kind() != node.KindComposite {
		t.Errorf("kind = %s", n.Kind())
	}
}
