// Package encode converts trees to and from a document form usable as
// YAML or JSON. The document leaf payload set is closed: int, float,
// string and bool; anything else fails to encode or decode.
package encode

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/arborlab/arbor/node"
)

type Format int

const (
	YAML Format = iota
	JSON
)

func (f Format) String() string {
	if f == JSON {
		return "json"
	}
	return "yaml"
}

type encState struct {
	format Format
}

type Option func(*encState)

func WithFormat(f Format) Option {
	return func(es *encState) { es.format = f }
}

// doc is the wire shape of a node.
type doc struct {
	Kind     string            `json:"kind" yaml:"kind"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Type     string            `json:"type,omitempty" yaml:"type,omitempty"`
	Value    any               `json:"value" yaml:"value"`
	Meta     map[string]string `json:"meta,omitempty" yaml:"meta,omitempty"`
	Children []*doc            `json:"children,omitempty" yaml:"children,omitempty"`
}

func Marshal(n node.Node, opts ...Option) ([]byte, error) {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	d, err := toDoc(n)
	if err != nil {
		return nil, err
	}
	if es.format == JSON {
		return json.Marshal(d)
	}
	return yaml.Marshal(d)
}

func Encode(n node.Node, w io.Writer, opts ...Option) error {
	data, err := Marshal(n, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Unmarshal accepts either format: JSON documents parse as YAML.
func Unmarshal(data []byte) (node.Node, error) {
	d := &doc{}
	if err := yaml.Unmarshal(data, d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}
	return fromDoc(d)
}

func Decode(r io.Reader) (node.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading: %w", err)
	}
	return Unmarshal(data)
}

func toDoc(n node.Node) (*doc, error) {
	switch t := n.(type) {
	case *node.Composite:
		d := &doc{Kind: "composite", Name: t.Name()}
		for _, k := range t.MetaKeys() {
			if d.Meta == nil {
				d.Meta = map[string]string{}
			}
			v, _ := t.Meta(k)
			d.Meta[k] = v
		}
		for _, ch := range t.Children() {
			cd, err := toDoc(ch)
			if err != nil {
				return nil, err
			}
			d.Children = append(d.Children, cd)
		}
		return d, nil
	case node.Valuer:
		d := &doc{Kind: "leaf"}
		switch v := t.Any().(type) {
		case int:
			d.Type = "int"
			d.Value = v
		case int64:
			d.Type = "int"
			d.Value = v
		case float64:
			d.Type = "float"
			d.Value = v
		case string:
			d.Type = "string"
			d.Value = v
		case bool:
			d.Type = "bool"
			d.Value = v
		default:
			return nil, fmt.Errorf("%w: leaf payload %T", ErrLeafPayload, v)
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: kind %s", ErrBadDocument, n.Kind())
}

func fromDoc(d *doc) (node.Node, error) {
	switch d.Kind {
	case "composite":
		c := node.NewComposite(d.Name)
		for k, v := range d.Meta {
			c.SetMeta(k, v)
		}
		for i, cd := range d.Children {
			ch, err := fromDoc(cd)
			if err != nil {
				return nil, fmt.Errorf("child %d of %q: %w", i, d.Name, err)
			}
			c.Add(ch)
		}
		return c, nil
	case "leaf":
		return leafFromDoc(d)
	}
	return nil, fmt.Errorf("%w: kind %q", ErrBadDocument, d.Kind)
}

func leafFromDoc(d *doc) (node.Node, error) {
	switch d.Type {
	case "int":
		v, err := asInt(d.Value)
		if err != nil {
			return nil, err
		}
		return node.NewLeaf(int(v)), nil
	case "float":
		v, err := asFloat(d.Value)
		if err != nil {
			return nil, err
		}
		return node.NewLeaf(v), nil
	case "string":
		v, ok := d.Value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: string leaf holds %T", ErrLeafPayload, d.Value)
		}
		return node.NewLeaf(v), nil
	case "bool":
		v, ok := d.Value.(bool)
		if !ok {
			return nil, fmt.Errorf("%w: bool leaf holds %T", ErrLeafPayload, d.Value)
		}
		return node.NewLeaf(v), nil
	}
	return nil, fmt.Errorf("%w: leaf type %q", ErrLeafPayload, d.Type)
}

func asInt(v any) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		return int64(t), nil
	case float64:
		if t == float64(int64(t)) {
			return int64(t), nil
		}
	}
	return 0, fmt.Errorf("%w: int leaf holds %T", ErrLeafPayload, v)
}

func asFloat(v any) (float64, error) {
	switch t := v.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case uint64:
		return float64(t), nil
	}
	return 0, fmt.Errorf("%w: float leaf holds %T", ErrLeafPayload, v)
}
