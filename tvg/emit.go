package tvg

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// msgpack tags keep the wire field names lowercase and stable regardless
// of how the Go struct fields are later renamed.
type wireNode struct {
	Type    string `msgpack:"type"`
	Content any    `msgpack:"content"`
}

// Emit serializes a Document through the self-describing MessagePack
// boundary encoding (§6.2): every Node becomes a two-field map tagging its
// own type, so a reader needs no schema beyond "read a msgpack value."
// Map keys are written in sorted order, so the same Document always emits
// the same bytes.
func Emit(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(toWire(doc.ToNode())); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// toWire recursively lowers a Node tree into plain values msgpack encodes
// without reflecting into Node's exported-but-untagged fields directly.
func toWire(n Node) wireNode {
	switch c := n.Content.(type) {
	case []Node:
		out := make([]wireNode, len(c))
		for i, child := range c {
			out[i] = toWire(child)
		}
		return wireNode{Type: n.Type, Content: out}
	case map[string]Node:
		out := make(map[string]any, len(c))
		for k, child := range c {
			out[k] = toWire(child)
		}
		return wireNode{Type: n.Type, Content: out}
	default:
		return wireNode{Type: n.Type, Content: c}
	}
}
