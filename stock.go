package stockadapter

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Field names shared by every representation of a Stock.
const (
	FieldName     = "name"
	FieldDatetime = "datetime"
	FieldPrice    = "price"
)

// Stock is an immutable quote. Datetime is RFC 3339 text (e.g. 2022-02-23T11:00:00Z)
// and is never parsed.
type Stock struct {
	name     string
	datetime string
	price    float64
}

func NewStock(name, datetime string, price float64) Stock {
	return Stock{name: name, datetime: datetime, price: price}
}

// StockFromNode builds a Stock from an object node carrying name, datetime and price.
// A key that is absent or null yields *MissingFieldError; a value of the wrong
// JSON type yields *TypeMismatchError. No partial Stock is ever returned.
func StockFromNode(node *Node) (Stock, error) {
	name, err := stringField(node, FieldName)
	if err != nil {
		return Stock{}, err
	}
	datetime, err := stringField(node, FieldDatetime)
	if err != nil {
		return Stock{}, err
	}
	v, err := requiredField(node, FieldPrice)
	if err != nil {
		return Stock{}, err
	}
	price, ok := v.Float64()
	if !ok {
		return Stock{}, &TypeMismatchError{Field: FieldPrice, Want: KindNumber.String(), Got: v.Kind().String()}
	}
	return NewStock(name, datetime, price), nil
}

func requiredField(node *Node, key string) (*Node, error) {
	v, ok := node.Get(key)
	if !ok || v.IsNull() {
		return nil, &MissingFieldError{Field: key}
	}
	return v, nil
}

func stringField(node *Node, key string) (string, error) {
	v, err := requiredField(node, key)
	if err != nil {
		return "", err
	}
	s, ok := v.Text()
	if !ok {
		return "", &TypeMismatchError{Field: key, Want: KindString.String(), Got: v.Kind().String()}
	}
	return s, nil
}

func (s Stock) Name() string     { return s.name }
func (s Stock) Datetime() string { return s.datetime }
func (s Stock) Price() float64   { return s.price }

func (s Stock) String() string {
	return fmt.Sprintf("Stock(name='%s', datetime='%s', price=%s)", s.name, s.datetime, formatPrice(s.price))
}

// formatPrice prints the shortest exact representation, keeping a trailing ".0"
// on integral values so 115 reads as 115.0.
func formatPrice(p float64) string {
	format := byte('f')
	if a := math.Abs(p); a != 0 && (a < 1e-4 || a >= 1e21) {
		format = 'g'
	}
	out := strconv.FormatFloat(p, format, -1, 64)
	if !strings.ContainsAny(out, ".eEnN") {
		out += ".0"
	}
	return out
}

type stockJSON struct {
	Name     string  `json:"name"`
	Datetime string  `json:"datetime"`
	Price    float64 `json:"price"`
}

func (s Stock) MarshalJSON() ([]byte, error) {
	return json.Marshal(stockJSON{Name: s.name, Datetime: s.datetime, Price: s.price})
}
