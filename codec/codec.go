// Package codec holds the source formats a stock document may arrive in.
package codec

import (
	"encoding/xml"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Codec decodes and encodes documents of a single format.
type Codec interface {
	Name() string
	Encode(v any) ([]byte, error)
	Decode(b []byte, v any) error
}

type XML struct{}

func (XML) Name() string { return "xml" }

func (XML) Encode(v any) ([]byte, error) {
	return xml.MarshalIndent(v, "", "  ")
}

func (XML) Decode(b []byte, v any) error {
	return xml.Unmarshal(b, v)
}

type YAML struct{}

func (YAML) Name() string { return "yaml" }

func (YAML) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (YAML) Decode(b []byte, v any) error {
	return yaml.Unmarshal(b, v)
}

type JSON struct{}

func (JSON) Name() string { return "json" }

func (JSON) Encode(v any) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (JSON) Decode(b []byte, v any) error {
	return json.Unmarshal(b, v)
}

// ByName returns the codec registered under name, or false.
func ByName(name string) (Codec, bool) {
	switch name {
	case "xml":
		return XML{}, true
	case "yaml", "yml":
		return YAML{}, true
	case "json":
		return JSON{}, true
	}
	return nil, false
}
