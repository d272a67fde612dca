package command

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"

	"github.com/arborlab/arbor/debug"
	"github.com/arborlab/arbor/encode"
)

// Patch applies an RFC 6902 JSON patch to a document's tree. The tree
// round-trips through its JSON form; undo restores the prior root.
type Patch struct {
	Doc      *Document
	Ops      []byte
	prev     []byte
	executed bool
}

func NewPatch(doc *Document, ops []byte) *Patch {
	return &Patch{Doc: doc, Ops: ops}
}

func (c *Patch) Execute() error {
	p, err := jsonpatch.DecodePatch(c.Ops)
	if err != nil {
		return fmt.Errorf("decoding patch: %w", err)
	}
	before, err := encode.Marshal(c.Doc.Root, encode.WithFormat(encode.JSON))
	if err != nil {
		return err
	}
	after, err := p.Apply(before)
	if err != nil {
		return fmt.Errorf("applying patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: %s -> %s\n", before, after)
	}
	root, err := encode.Unmarshal(after)
	if err != nil {
		return fmt.Errorf("patched document: %w", err)
	}
	c.prev = before
	c.Doc.Root = root
	c.executed = true
	return nil
}

func (c *Patch) Undo() error {
	if !c.executed {
		return ErrNotExecuted
	}
	root, err := encode.Unmarshal(c.prev)
	if err != nil {
		return err
	}
	c.Doc.Root = root
	c.executed = false
	return nil
}

func (c *Patch) CanUndo() bool { return true }

func (c *Patch) Description() string {
	return fmt.Sprintf("patch document (%d bytes)", len(c.Ops))
}
