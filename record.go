package stockadapter

import (
	"bytes"
	"encoding/xml"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// stockRecord is the shape a source document is decoded into. Pointers mark
// element presence; absent elements stay nil.
type stockRecord struct {
	XMLName  xml.Name   `xml:"Stock" json:"-" yaml:"-"`
	Name     *string    `xml:"name" json:"name" yaml:"name"`
	Datetime *string    `xml:"datetime" json:"datetime" yaml:"datetime"`
	Price    *priceText `xml:"price" json:"price" yaml:"price"`
}

// missing lists the fields the source document did not carry.
func (r *stockRecord) missing() []string {
	var out []string
	if r.Name == nil {
		out = append(out, FieldName)
	}
	if r.Datetime == nil {
		out = append(out, FieldDatetime)
	}
	if r.Price == nil {
		out = append(out, FieldPrice)
	}
	return out
}

// text returns a pointer to the raw text of field, or nil for an unknown field.
func (r *stockRecord) text(field string) *string {
	switch field {
	case FieldName:
		return r.Name
	case FieldDatetime:
		return r.Datetime
	case FieldPrice:
		return (*string)(r.Price)
	}
	return nil
}

// priceText keeps the price as it appeared in the source. It encodes as a JSON
// number when the text is a finite float and as a JSON string otherwise, which
// leaves the numeric check to whoever consumes the node.
type priceText string

func (p priceText) MarshalJSON() ([]byte, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(string(p)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(string(p))
	}
	return []byte(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// UnmarshalJSON accepts both a number literal and a string.
func (p *priceText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = priceText(s)
		return nil
	}
	*p = priceText(b)
	return nil
}
