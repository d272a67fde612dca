package render

import (
	"strings"
	"testing"

	"github.com/arborlab/arbor/node"
)

func sample() *node.Composite {
	root := node.NewComposite("root")
	inner := node.NewComposite("inner")
	inner.Add(node.NewLeaf(1))
	root.Add(inner, node.NewLeaf("x"))
	return root
}

func TestRenderPlainMatchesString(t *testing.T) {
	root := sample()
	var b strings.Builder
	if err := Render(root, &b); err != nil {
		t.Fatal(err)
	}
	if b.String() != root.String()+"\n" {
		t.Errorf("render disagrees with String:\n%q\nvs\n%q", b.String(), root.String())
	}
}

func TestRenderIndent(t *testing.T) {
	root := sample()
	var b strings.Builder
	if err := Render(root, &b, Indent(4)); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(b.String(), "\n")
	if !strings.HasPrefix(lines[1], "    inner") {
		t.Errorf("expected 4-space indent, got %q", lines[1])
	}
}

func TestRenderShowMeta(t *testing.T) {
	root := sample()
	root.SetMeta("owner", "tests")
	var b strings.Builder
	if err := Render(root, &b, ShowMeta(true)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(b.String(), "# owner=tests") {
		t.Errorf("meta line missing:\n%s", b.String())
	}
}

func TestRenderChildOrder(t *testing.T) {
	root := node.NewComposite("r")
	root.Add(node.NewLeaf(1), node.NewLeaf(2), node.NewLeaf(3))
	var b strings.Builder
	if err := Render(root, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	if strings.Index(out, "1") > strings.Index(out, "2") ||
		strings.Index(out, "2") > strings.Index(out, "3") {
		t.Errorf("children out of order:\n%s", out)
	}
}
