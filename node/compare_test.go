package node

import (
	"testing"
)

func TestCompare(t *testing.T) {
	withChildren := func(name string, ch ...Node) *Composite {
		c := NewComposite(name)
		c.Add(ch...)
		return c
	}

	tests := []struct {
		name     string
		a, b     Node
		expected int
	}{
		// Kind ranking: Leaf < Composite
		{"Leaf < Composite", NewLeaf(1), NewComposite("x"), -1},
		{"Composite > Leaf", NewComposite("x"), NewLeaf(1), 1},

		// Payload sub-rank: Bool < Int < Float < String
		{"Bool < Int", NewLeaf(true), NewLeaf(0), -1},
		{"Int < Float", NewLeaf(5), NewLeaf(1.0), -1},
		{"Float < String", NewLeaf(9.9), NewLeaf("a"), -1},

		{"false < true", NewLeaf(false), NewLeaf(true), -1},
		{"Int < Int", NewLeaf(1), NewLeaf(2), -1},
		{"Int == Int", NewLeaf(7), NewLeaf(7), 0},
		{"Float < Float", NewLeaf(1.5), NewLeaf(2.5), -1},
		{"String < String", NewLeaf("a"), NewLeaf("b"), -1},

		// Composite comparison
		{"Name ordering", NewComposite("a"), NewComposite("b"), -1},
		{"Empty == Empty", NewComposite("c"), NewComposite("c"), 0},
		{"Short < Long", withChildren("c", NewLeaf(1)), withChildren("c", NewLeaf(1), NewLeaf(2)), -1},
		{"Child ordering", withChildren("c", NewLeaf(1)), withChildren("c", NewLeaf(2)), -1},
		{"Nested equal",
			withChildren("c", withChildren("d", NewLeaf(1))),
			withChildren("c", withChildren("d", NewLeaf(1))),
			0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestHashAgreesWithCompare(t *testing.T) {
	a := NewComposite("root")
	a.Add(NewLeaf(10), NewLeaf(20))
	b := NewComposite("root")
	b.Add(NewLeaf(10), NewLeaf(20))
	c := NewComposite("root")
	c.Add(NewLeaf(20), NewLeaf(10))

	if Hash(a) != Hash(b) {
		t.Error("equal trees must hash equal")
	}
	if Hash(a) == Hash(c) {
		t.Error("reordered children should hash differently")
	}
	if Compare(a, b) != 0 {
		t.Error("equal trees must compare equal")
	}
}
