package node

import (
	"cmp"
	"fmt"
	"strings"
)

// Compare returns an integer comparing two trees structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Leaves rank before composites; leaves order by payload, composites by
// name, then children lexicographically, then metadata.
func Compare(a, b Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a)
	rankB := rank(b)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch at := a.(type) {
	case Valuer:
		return compareValues(at.Any(), b.(Valuer).Any())
	case *Composite:
		return compareComposites(at, b.(*Composite))
	}
	return 0
}

func rank(n Node) int {
	switch n.Kind() {
	case KindLeaf:
		return 0
	case KindComposite:
		return 1
	}
	return 100
}

// compareValues orders leaf payloads.
// Sub-rank: Bool < Int < Float < String < everything else.
func compareValues(a, b any) int {
	subA := valueSubRank(a)
	subB := valueSubRank(b)
	if subA != subB {
		return cmp.Compare(subA, subB)
	}
	switch av := a.(type) {
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0
		}
		if !av {
			return -1
		}
		return 1
	case int:
		return cmp.Compare(int64(av), asInt64(b))
	case int64:
		return cmp.Compare(av, asInt64(b))
	case int32:
		return cmp.Compare(int64(av), asInt64(b))
	case float64:
		return cmp.Compare(av, asFloat64(b))
	case float32:
		return cmp.Compare(float64(av), asFloat64(b))
	case string:
		return strings.Compare(av, b.(string))
	}
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func valueSubRank(v any) int {
	switch v.(type) {
	case bool:
		return 0
	case int, int32, int64:
		return 1
	case float32, float64:
		return 2
	case string:
		return 3
	}
	return 4
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int:
		return int64(t)
	case int32:
		return int64(t)
	case int64:
		return t
	}
	return 0
}

func asFloat64(v any) float64 {
	switch t := v.(type) {
	case float32:
		return float64(t)
	case float64:
		return t
	}
	return 0
}

func compareComposites(a, b *Composite) int {
	if c := strings.Compare(a.name, b.name); c != 0 {
		return c
	}
	minLen := min(len(a.children), len(b.children))
	for i := 0; i < minLen; i++ {
		if c := Compare(a.children[i], b.children[i]); c != 0 {
			return c
		}
	}
	if c := cmp.Compare(len(a.children), len(b.children)); c != 0 {
		return c
	}
	return compareMeta(a, b)
}

func compareMeta(a, b *Composite) int {
	ka := a.MetaKeys()
	kb := b.MetaKeys()
	minLen := min(len(ka), len(kb))
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := strings.Compare(a.meta[ka[i]], b.meta[kb[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}
