package command

import (
	"fmt"

	"github.com/arborlab/arbor/debug"
)

// Invoker runs commands, queues deferred ones, and keeps undo and redo
// stacks. Executing a fresh command discards any redo history.
type Invoker struct {
	queue   []Command
	undone  []Command
	history []Command
}

func NewInvoker() *Invoker {
	return &Invoker{}
}

func (in *Invoker) Execute(c Command) error {
	if debug.Patch() {
		debug.Logf("execute: %s\n", c.Description())
	}
	if err := c.Execute(); err != nil {
		return fmt.Errorf("executing %s: %w", c.Description(), err)
	}
	if c.CanUndo() {
		in.history = append(in.history, c)
	}
	in.undone = in.undone[:0]
	return nil
}

// Queue defers c until ExecuteQueued.
func (in *Invoker) Queue(c Command) {
	in.queue = append(in.queue, c)
}

func (in *Invoker) QueueLen() int { return len(in.queue) }

// ExecuteQueued runs queued commands in order, stopping at the first
// failure. The queue keeps whatever did not run.
func (in *Invoker) ExecuteQueued() error {
	for len(in.queue) > 0 {
		c := in.queue[0]
		if err := in.Execute(c); err != nil {
			return err
		}
		in.queue = in.queue[1:]
	}
	return nil
}

func (in *Invoker) UndoLast() error {
	if len(in.history) == 0 {
		return ErrNothingToUndo
	}
	c := in.history[len(in.history)-1]
	if err := c.Undo(); err != nil {
		return err
	}
	in.history = in.history[:len(in.history)-1]
	in.undone = append(in.undone, c)
	return nil
}

func (in *Invoker) RedoLast() error {
	if len(in.undone) == 0 {
		return ErrNothingToRedo
	}
	c := in.undone[len(in.undone)-1]
	if err := c.Execute(); err != nil {
		return err
	}
	in.undone = in.undone[:len(in.undone)-1]
	in.history = append(in.history, c)
	return nil
}

// History lists undoable commands in execution order.
func (in *Invoker) History() []string {
	out := make([]string, 0, len(in.history))
	for _, c := range in.history {
		out = append(out, c.Description())
	}
	return out
}
