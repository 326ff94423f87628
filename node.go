package stockadapter

import (
	"bytes"
	"io"
	"sort"
	"strconv"

	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// Kind identifies the type of value held by a Node.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Node is a read-only view over a decoded JSON value. It is the format-neutral
// shape handed from the adapter to a StockService.
//
// Numbers keep their literal text (json.Number) so that no precision is lost
// between the bridge and the consumer.
type Node struct {
	v any
}

// ParseNode decodes a single JSON value into a Node.
func ParseNode(data []byte) (*Node, error) {
	const op errors.Op = "stockadapter.ParseNode"
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, &ParseError{Format: "json", Err: errors.New(op).Err(err)}
	}
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &ParseError{Format: "json", Err: errors.New(op).Msg("trailing data after JSON value")}
	}
	return &Node{v: v}, nil
}

// Kind reports the type of the value. A nil Node is null.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindNull
	}
	switch n.v.(type) {
	case bool:
		return KindBool
	case json.Number:
		return KindNumber
	case string:
		return KindString
	case []any:
		return KindArray
	case map[string]any:
		return KindObject
	}
	return KindNull
}

// IsNull reports whether the node holds JSON null.
func (n *Node) IsNull() bool { return n.Kind() == KindNull }

// Get returns the member stored under key. ok is false when n is not an
// object or the key is absent.
func (n *Node) Get(key string) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	m, ok := n.v.(map[string]any)
	if !ok {
		return nil, false
	}
	v, ok := m[key]
	if !ok {
		return nil, false
	}
	return &Node{v: v}, true
}

// Index returns the i'th element of an array node.
func (n *Node) Index(i int) (*Node, bool) {
	if n == nil {
		return nil, false
	}
	a, ok := n.v.([]any)
	if !ok || i < 0 || i >= len(a) {
		return nil, false
	}
	return &Node{v: a[i]}, true
}

// Len returns the number of elements of an array or members of an object, 0 otherwise.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	switch v := n.v.(type) {
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	}
	return 0
}

// Keys returns the member names of an object node in sorted order.
func (n *Node) Keys() []string {
	if n == nil {
		return nil
	}
	m, ok := n.v.(map[string]any)
	if !ok {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Text returns the value of a string node.
func (n *Node) Text() (string, bool) {
	if n == nil {
		return "", false
	}
	s, ok := n.v.(string)
	return s, ok
}

// Float64 returns the value of a number node.
func (n *Node) Float64() (float64, bool) {
	if n == nil {
		return 0, false
	}
	num, ok := n.v.(json.Number)
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Bool returns the value of a bool node.
func (n *Node) Bool() (bool, bool) {
	if n == nil {
		return false, false
	}
	b, ok := n.v.(bool)
	return b, ok
}

func (n *Node) MarshalJSON() ([]byte, error) {
	if n == nil {
		return []byte("null"), nil
	}
	return json.Marshal(n.v)
}

func (n *Node) String() string {
	b, err := n.MarshalJSON()
	if err != nil {
		return "<invalid node>"
	}
	return string(b)
}
