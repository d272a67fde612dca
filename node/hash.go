package node

import (
	"encoding/binary"
	"fmt"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the tree rooted at n.
// Equal trees (Compare == 0) hash equal within a process.
// It panics if n is nil.
func Hash(n Node) uint64 {
	if n == nil {
		panic("node: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(n.Kind()))

	switch t := n.(type) {
	case Valuer:
		hashValue(&h, t.Any())
	case *Composite:
		h.WriteString(t.name)
		var b [8]byte
		for _, ch := range t.children {
			// Combine child hashes order-dependently.
			binary.LittleEndian.PutUint64(b[:], Hash(ch))
			h.Write(b[:])
		}
		for _, k := range t.MetaKeys() {
			h.WriteString(k)
			h.WriteString(t.meta[k])
		}
	}
	return h.Sum64()
}

func hashValue(h *maphash.Hash, v any) {
	switch t := v.(type) {
	case bool:
		if t {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case int, int32, int64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(asInt64(t)))
		h.Write(b[:])
	case float32, float64:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(asFloat64(t)))
		h.Write(b[:])
	case string:
		h.WriteString(t)
	default:
		h.WriteString(fmt.Sprint(t))
	}
}
