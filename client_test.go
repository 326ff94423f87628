package stockadapter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	docs  []string
	stock Stock
	err   error
}

func (r *recordingSender) SendStockData(doc string) (Stock, error) {
	r.docs = append(r.docs, doc)
	return r.stock, r.err
}

func TestClient_Default(t *testing.T) {
	s, err := NewClient().SendStockData(appleXML)
	require.NoError(t, err)
	assert.Equal(t, NewStock("Apple", "2022-02-23T11:00:00Z", 115.0), s)
}

func TestClient_NilSenderFallsBack(t *testing.T) {
	s, err := NewClientWith(nil).SendStockData(appleXML)
	require.NoError(t, err)
	assert.Equal(t, "Apple", s.Name())
}

func TestClient_Delegates(t *testing.T) {
	fake := &recordingSender{stock: NewStock("Fake", "t", 1)}
	s, err := NewClientWith(fake).SendStockData("<anything/>")
	require.NoError(t, err)
	assert.Equal(t, "Fake", s.Name())
	assert.Equal(t, []string{"<anything/>"}, fake.docs)
}

func TestClient_PropagatesErrors(t *testing.T) {
	_, err := NewClient().SendStockData(`<Stock><name>Apple</name></Stock>`)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
}
