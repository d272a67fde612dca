package node

import "fmt"

// Leaf wraps a single value of type T. Its identity is fixed; the value
// is mutable through SetValue. A leaf is owned by value by whichever
// composite holds it.
type Leaf[T any] struct {
	val T
}

func NewLeaf[T any](v T) *Leaf[T] {
	return &Leaf[T]{val: v}
}

func (l *Leaf[T]) Kind() Kind { return KindLeaf }

func (l *Leaf[T]) Value() T { return l.val }

func (l *Leaf[T]) SetValue(v T) { l.val = v }

func (l *Leaf[T]) Any() any { return l.val }

// Clone copies the leaf. Payloads are copied by value; reference-typed
// payloads would alias, so keep T a value type.
func (l *Leaf[T]) Clone() Node {
	c := *l
	return &c
}

func (l *Leaf[T]) String() string {
	return fmt.Sprint(l.val)
}

func (l *Leaf[T]) sealed() {}
