package stockadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func pricePtr(s string) *priceText { p := priceText(s); return &p }

func TestToNode_NumericPriceBecomesNumber(t *testing.T) {
	rec := stockRecord{Name: strPtr("Apple"), Datetime: strPtr("2022-02-23T11:00:00Z"), Price: pricePtr("115.0")}
	n, err := toNode(rec)
	require.NoError(t, err)

	assert.Equal(t, []string{"datetime", "name", "price"}, n.Keys())
	p, _ := n.Get("price")
	assert.Equal(t, KindNumber, p.Kind())
	v, _ := p.Float64()
	assert.Equal(t, 115.0, v)
}

func TestToNode_PriceText(t *testing.T) {
	tests := []struct {
		price string
		kind  Kind
	}{
		{"115.0", KindNumber},
		{" 42 ", KindNumber},
		{"-0.5", KindNumber},
		{"1e3", KindNumber},
		{"abc", KindString},
		{"", KindString},
		{"NaN", KindString},
		{"Inf", KindString},
		{"1e999", KindString},
	}
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			n, err := toNode(stockRecord{Name: strPtr("n"), Datetime: strPtr("d"), Price: pricePtr(tt.price)})
			require.NoError(t, err)
			p, _ := n.Get("price")
			assert.Equal(t, tt.kind, p.Kind())
		})
	}
}

func TestNodeFrom(t *testing.T) {
	in := struct {
		A string `json:"a"`
		B int    `json:"b"`
	}{A: "hello", B: 42}
	n, err := NodeFrom(in)
	require.NoError(t, err)
	a, _ := n.Get("a")
	text, _ := a.Text()
	assert.Equal(t, "hello", text)
	b, _ := n.Get("b")
	v, _ := b.Float64()
	assert.Equal(t, 42.0, v)
}

func TestNodeFrom_Unmarshalable(t *testing.T) {
	_, err := NodeFrom(make(chan int))
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
