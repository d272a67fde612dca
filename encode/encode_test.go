package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/arborlab/arbor/node"
)

func sample() *node.Composite {
	root := node.NewComposite("root")
	root.SetMeta("owner", "tests")
	inner := node.NewComposite("inner")
	inner.Add(node.NewLeaf(1), node.NewLeaf(2.5))
	root.Add(inner, node.NewLeaf("x"), node.NewLeaf(true))
	return root
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{YAML, JSON} {
		t.Run(f.String(), func(t *testing.T) {
			orig := sample()
			data, err := Marshal(orig, WithFormat(f))
			if err != nil {
				t.Fatal(err)
			}
			back, err := Unmarshal(data)
			if err != nil {
				t.Fatalf("unmarshal %s: %v\n%s", f, err, data)
			}
			if d := node.Compare(orig, back); d != 0 {
				t.Errorf("round trip compares %d:\n%s\nvs\n%s", d, orig, back)
			}
		})
	}
}

func TestEncodeDecodeStream(t *testing.T) {
	orig := sample()
	var buf bytes.Buffer
	if err := Encode(orig, &buf, WithFormat(JSON)); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if node.Compare(orig, back) != 0 {
		t.Errorf("stream round trip mismatch")
	}
}

func TestUnknownLeafType(t *testing.T) {
	in := `
kind: leaf
type: complex
value: 3
`
	_, err := Unmarshal([]byte(in))
	if !errors.Is(err, ErrLeafPayload) {
		t.Errorf("got %v, want ErrLeafPayload", err)
	}
}

func TestUnknownKind(t *testing.T) {
	_, err := Unmarshal([]byte(`kind: widget`))
	if !errors.Is(err, ErrBadDocument) {
		t.Errorf("got %v, want ErrBadDocument", err)
	}
}

func TestPayloadMismatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"string-as-int", "kind: leaf\ntype: int\nvalue: nope"},
		{"fractional-int", "kind: leaf\ntype: int\nvalue: 2.5"},
		{"int-as-bool", "kind: leaf\ntype: bool\nvalue: 1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Unmarshal([]byte(tc.in)); !errors.Is(err, ErrLeafPayload) {
				t.Errorf("got %v, want ErrLeafPayload", err)
			}
		})
	}
}

func TestUnsupportedPayloadFailsToEncode(t *testing.T) {
	root := node.NewComposite("r")
	root.Add(node.NewLeaf([]string{"a"}))
	if _, err := Marshal(root); !errors.Is(err, ErrLeafPayload) {
		t.Errorf("got %v, want ErrLeafPayload", err)
	}
}

func TestMetaSurvives(t *testing.T) {
	orig := sample()
	data, err := Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	c, ok := back.(*node.Composite)
	if !ok {
		t.Fatalf("decoded to %T", back)
	}
	if v, ok := c.Meta("owner"); !ok || v != "tests" {
		t.Errorf("meta owner=%q ok=%v", v, ok)
	}
	if !strings.Contains(string(data), "owner") {
		t.Errorf("document lacks meta:\n%s", data)
	}
}
