package stockadapter

// StockService turns a generic node into a Stock. It knows nothing about the
// format the data originally arrived in.
type StockService interface {
	Send(node *Node) (Stock, error)
}

// ServiceFunc adapts an ordinary function to StockService.
type ServiceFunc func(node *Node) (Stock, error)

func (f ServiceFunc) Send(node *Node) (Stock, error) { return f(node) }

// EnrichFunc is a processing stage run on a freshly built Stock. It returns the
// Stock to hand to the next stage.
type EnrichFunc func(Stock) (Stock, error)

// ComposeEnrichers chains stages left-to-right. The first error aborts the chain.
func ComposeEnrichers(fns ...EnrichFunc) EnrichFunc {
	return func(s Stock) (Stock, error) {
		cur := s
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			out, err := fn(cur)
			if err != nil {
				return Stock{}, err
			}
			cur = out
		}
		return cur, nil
	}
}

type ServiceOption func(*JSONStockService)

// WithEnrichers appends stages to the service's pipeline.
func WithEnrichers(fns ...EnrichFunc) ServiceOption {
	return func(s *JSONStockService) { s.enrichers = append(s.enrichers, fns...) }
}

// JSONStockService interprets the node directly as a Stock, then runs any
// configured enrichment stages over it.
type JSONStockService struct {
	enrichers []EnrichFunc
}

func NewJSONStockService(opts ...ServiceOption) *JSONStockService {
	s := &JSONStockService{}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *JSONStockService) Send(node *Node) (Stock, error) {
	stock, err := StockFromNode(node)
	if err != nil {
		return Stock{}, err
	}
	if len(s.enrichers) == 0 {
		return stock, nil
	}
	return ComposeEnrichers(s.enrichers...)(stock)
}
