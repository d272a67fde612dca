package node

import "fmt"

// Kind discriminates the closed set of tree alternatives.
type Kind uint8

const (
	KindLeaf Kind = iota
	KindComposite
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindLeaf:      "Leaf",
		KindComposite: "Composite",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Leaf":      KindLeaf,
		"Composite": KindComposite,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindLeaf,
		KindComposite,
	}
}
