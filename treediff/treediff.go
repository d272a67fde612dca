// Package treediff reports textual differences between two trees by
// diffing their rendered forms.
package treediff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arborlab/arbor/node"
	"github.com/arborlab/arbor/render"
)

// Equal reports whether a and b compare as the same tree.
func Equal(a, b node.Node) bool {
	return node.Compare(a, b) == 0
}

// Diff renders a and b and returns their line-level edits. Equal trees
// yield a single equal-typed diff.
func Diff(a, b node.Node) ([]diffmatchpatch.Diff, error) {
	ra, err := renderPlain(a)
	if err != nil {
		return nil, err
	}
	rb, err := renderPlain(b)
	if err != nil {
		return nil, err
	}
	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(ra, rb)
	diffs := dmp.DiffMain(ca, cb, false)
	return dmp.DiffCharsToLines(diffs, lines), nil
}

// Text formats diffs in unified style, "-" for removals and "+" for
// insertions, one rendered line per diff line.
func Text(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
		}
		for _, line := range splitKeepNonEmpty(d.Text) {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// Pretty colors diffs for terminals using the library's own styling.
func Pretty(diffs []diffmatchpatch.Diff) string {
	return diffmatchpatch.New().DiffPrettyText(diffs)
}

func renderPlain(n node.Node) (string, error) {
	var b strings.Builder
	if err := render.Render(n, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func splitKeepNonEmpty(text string) []string {
	parts := strings.Split(text, "\n")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
