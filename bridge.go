package stockadapter

import (
	"github.com/Station-Manager/errors"
	"github.com/goccy/go-json"
)

// toNode serializes the input to JSON and decodes it back as a generic Node.
// This is the format bridge: whatever the input was decoded from, consumers
// only ever see its JSON shape.
func toNode[Input any](input Input) (*Node, error) {
	const op errors.Op = "stockadapter.toNode"
	data, err := json.Marshal(input)
	if err != nil {
		return nil, &ParseError{Format: "json", Err: errors.New(op).Err(err).Msg("marshal failed")}
	}
	return ParseNode(data)
}

// NodeFrom converts any JSON-encodable value into a Node.
func NodeFrom(v any) (*Node, error) {
	return toNode(v)
}
