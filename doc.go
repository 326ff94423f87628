// Package stockadapter converts stock documents in an external format (XML by
// default) into Stock values by way of a format-neutral JSON node.
//
// Basic Usage
//
//	client := stockadapter.NewClient()
//	stock, err := client.SendStockData(`<Stock><name>Apple</name><datetime>2022-02-23T11:00:00Z</datetime><price>115.0</price></Stock>`)
//
// # Pipeline
//
// FormatAdapter.SendStockData follows these steps in order:
//  1. Decode the document with the source codec into name, datetime and price
//  2. Apply registered field converters to the raw text
//  3. Re-encode the record as JSON and parse it into a generic Node
//  4. Hand the Node to the StockService, which builds the Stock
//
// Downstream services only ever see the Node; they never learn the source format.
//
// # Field Converters
//
// Register converters for specific field names:
//
//	adapter := stockadapter.NewXMLToJSONAdapter(
//	    stockadapter.WithConverter("price", converters.StripPriceFormatting),
//	)
//	adapter.RegisterConverter("name", converters.UpperName)
//
// # Errors
//
// Failures surface as *ParseError (malformed or incomplete document),
// *MissingFieldError (a node lacks name, datetime or price) or
// *TypeMismatchError (e.g. a non-numeric price). A Stock is either built
// completely or not at all.
//
// # Thread Safety
//
// FormatAdapter, JSONStockService and Client hold no per-call state and are safe
// for concurrent use. Converter registration uses a copy-on-write registry.
package stockadapter
