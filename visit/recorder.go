package visit

import "github.com/arborlab/arbor/node"

// Recorder is a test double: it logs the type-name sequence of every
// visited node and can serve canned per-type errors.
type Recorder struct {
	log    []string
	canned map[string]error
}

func NewRecorder() *Recorder {
	return &Recorder{canned: map[string]error{}}
}

// SetResult arranges for visits to nodes of the named type to return err.
func (r *Recorder) SetResult(typeName string, err error) {
	r.canned[typeName] = err
}

func (r *Recorder) VisitLeaf(l node.Valuer) error {
	return r.record(l)
}

func (r *Recorder) VisitComposite(c *node.Composite) error {
	if err := r.record(c); err != nil {
		return err
	}
	return Descend(c, r)
}

func (r *Recorder) record(n node.Node) error {
	name := TypeName(n)
	r.log = append(r.log, name)
	return r.canned[name]
}

func (r *Recorder) Log() []string { return r.log }

func (r *Recorder) Visited(typeName string) bool {
	for _, name := range r.log {
		if name == typeName {
			return true
		}
	}
	return false
}

func (r *Recorder) VisitCount(typeName string) int {
	n := 0
	for _, name := range r.log {
		if name == typeName {
			n++
		}
	}
	return n
}

func (r *Recorder) ClearLog() { r.log = nil }
