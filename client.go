package stockadapter

// Client is the call-site entry point for sending stock data. It owns no logic
// of its own and exists so the sender can be swapped at the composition root.
type Client struct {
	sender StockDataSender
}

// NewClient returns a Client backed by the default XML-to-JSON adapter.
func NewClient() *Client { return NewClientWith(nil) }

// NewClientWith returns a Client delegating to sender. A nil sender selects the default adapter.
func NewClientWith(sender StockDataSender) *Client {
	if sender == nil {
		sender = NewXMLToJSONAdapter()
	}
	return &Client{sender: sender}
}

func (c *Client) SendStockData(doc string) (Stock, error) {
	return c.sender.SendStockData(doc)
}
