package command

import (
	"testing"

	"github.com/arborlab/arbor/node"
)

func patchDoc() *Document {
	root := node.NewComposite("root")
	root.Add(node.NewLeaf(1), node.NewLeaf("x"))
	return NewDocument(root)
}

func TestPatchReplace(t *testing.T) {
	doc := patchDoc()
	ops := []byte(`[{"op":"replace","path":"/name","value":"renamed"}]`)
	c := NewPatch(doc, ops)
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	root, ok := doc.Root.(*node.Composite)
	if !ok {
		t.Fatalf("root is %T", doc.Root)
	}
	if root.Name() != "renamed" {
		t.Errorf("name %q", root.Name())
	}
}

func TestPatchUndoRestoresRoot(t *testing.T) {
	doc := patchDoc()
	before := doc.Root
	ops := []byte(`[{"op":"replace","path":"/children/0/value","value":99}]`)
	c := NewPatch(doc, ops)
	if err := c.Execute(); err != nil {
		t.Fatal(err)
	}
	if node.Compare(before, doc.Root) == 0 {
		t.Fatal("patch had no effect")
	}
	if err := c.Undo(); err != nil {
		t.Fatal(err)
	}
	if node.Compare(before, doc.Root) != 0 {
		t.Errorf("undo left root different:\n%s\nvs\n%s", before, doc.Root)
	}
}

func TestPatchBadOps(t *testing.T) {
	doc := patchDoc()
	if err := NewPatch(doc, []byte(`not json`)).Execute(); err == nil {
		t.Error("expected decode error")
	}
	ops := []byte(`[{"op":"replace","path":"/nope","value":1}]`)
	if err := NewPatch(doc, ops).Execute(); err == nil {
		t.Error("expected apply error")
	}
}
