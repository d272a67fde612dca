// Package command wraps tree edits as reversible operations and runs
// them through an invoker with undo and redo history.
package command

import (
	"fmt"

	"github.com/arborlab/arbor/node"
)

// Command is one edit against a document. Undo before Execute returns
// ErrNotExecuted; commands with CanUndo false refuse Undo outright.
type Command interface {
	Execute() error
	Undo() error
	CanUndo() bool
	Description() string
}

// Document holds the tree a command sequence edits. Commands share one
// document so undo history stays coherent.
type Document struct {
	Root node.Node
}

func NewDocument(root node.Node) *Document {
	return &Document{Root: root}
}

// SetValue replaces a leaf's payload and remembers the previous one.
type SetValue[T any] struct {
	Leaf     *node.Leaf[T]
	Value    T
	prev     T
	executed bool
}

func NewSetValue[T any](leaf *node.Leaf[T], value T) *SetValue[T] {
	return &SetValue[T]{Leaf: leaf, Value: value}
}

func (c *SetValue[T]) Execute() error {
	c.prev = c.Leaf.Value()
	c.Leaf.SetValue(c.Value)
	c.executed = true
	return nil
}

func (c *SetValue[T]) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	c.Leaf.SetValue(c.prev)
	c.executed = false
	return nil
}

func (c *SetValue[T]) CanUndo() bool { return true }

func (c *SetValue[T]) Description() string {
	return fmt.Sprintf("set value to %v", c.Value)
}

// Rename changes a composite's name.
type Rename struct {
	Target   *node.Composite
	Name     string
	prev     string
	executed bool
}

func NewRename(target *node.Composite, name string) *Rename {
	return &Rename{Target: target, Name: name}
}

func (c *Rename) Execute() error {
	c.prev = c.Target.Name()
	c.Target.SetName(c.Name)
	c.executed = true
	return nil
}

func (c *Rename) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	c.Target.SetName(c.prev)
	c.executed = false
	return nil
}

func (c *Rename) CanUndo() bool { return true }

func (c *Rename) Description() string {
	return fmt.Sprintf("rename to %q", c.Name)
}

// AddChild appends a child to a composite. Children are append-only,
// so the command cannot be undone.
type AddChild struct {
	Target *node.Composite
	Child  node.Node
}

func NewAddChild(target *node.Composite, child node.Node) *AddChild {
	return &AddChild{Target: target, Child: child}
}

func (c *AddChild) Execute() error {
	c.Target.Add(c.Child)
	return nil
}

func (c *AddChild) Undo() error { return ErrNotUndoable }

func (c *AddChild) CanUndo() bool { return false }

func (c *AddChild) Description() string {
	return fmt.Sprintf("add child to %q", c.Target.Name())
}
