package command

import "errors"

var (
	ErrNothingToUndo = errors.New("command: nothing to undo")
	ErrNothingToRedo = errors.New("command: nothing to redo")
	ErrNotExecuted   = errors.New("command: not executed")
	ErrNotUndoable   = errors.New("command: not undoable")
)
