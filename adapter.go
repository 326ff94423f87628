package stockadapter

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/Station-Manager/errors"
	"github.com/Station-Manager/stockadapter/codec"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StockDataSender accepts a stock document in some external format and
// returns the Stock it describes.
type StockDataSender interface {
	SendStockData(doc string) (Stock, error)
}

// ConverterFunc rewrites the raw text of a single field before the record is
// bridged to JSON. It receives a string and must return a string (or nil, which
// clears the field).
type ConverterFunc func(src interface{}) (interface{}, error)

// ComposeConverters chains multiple ConverterFunc instances left-to-right.
// If any converter returns an error it aborts.
// Nil output propagates immediately.
func ComposeConverters(fns ...ConverterFunc) ConverterFunc {
	return func(src interface{}) (interface{}, error) {
		cur := src
		for _, fn := range fns {
			out, err := fn(cur)
			if err != nil {
				return nil, err
			}
			if out == nil {
				return nil, nil
			}
			cur = out
		}
		return cur, nil
	}
}

// MapString returns a ConverterFunc applying f when src is a string; otherwise returns src unchanged.
func MapString(f func(string) string) ConverterFunc {
	return func(src interface{}) (interface{}, error) {
		if s, ok := src.(string); ok {
			return f(s), nil
		}
		return src, nil
	}
}

type Options struct {
	Service    StockService // receives the bridged node; defaults to NewJSONStockService()
	Codec      codec.Codec  // source format; defaults to codec.XML{}
	Logger     *zap.Logger  // defaults to a no-op logger
	converters map[string]ConverterFunc
}

type Option func(*Options)

func WithService(s StockService) Option { return func(o *Options) { o.Service = s } }
func WithSourceCodec(c codec.Codec) Option { return func(o *Options) { o.Codec = c } }
func WithLogger(l *zap.Logger) Option { return func(o *Options) { o.Logger = l } }
func WithConverter(field string, fn ConverterFunc) Option {
	return func(o *Options) {
		if o.converters == nil {
			o.converters = make(map[string]ConverterFunc)
		}
		o.converters[field] = fn
	}
}

// converterRegistry maps field name to converter and is swapped atomically (copy-on-write)
type converterRegistry struct {
	byField map[string]ConverterFunc
}

// FormatAdapter decodes a stock document with its source codec, re-encodes it
// as a generic JSON node and hands that node to a StockService.
//
// FormatAdapter is safe for concurrent use; converters may be registered while
// documents are being sent.
type FormatAdapter struct {
	converters atomic.Value // holds *converterRegistry
	options    Options
}

// NewXMLToJSONAdapter creates a FormatAdapter reading XML unless another codec is given.
func NewXMLToJSONAdapter(opts ...Option) *FormatAdapter {
	o := Options{}
	for _, f := range opts {
		f(&o)
	}
	if o.Service == nil {
		o.Service = NewJSONStockService()
	}
	if o.Codec == nil {
		o.Codec = codec.XML{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	reg := &converterRegistry{byField: make(map[string]ConverterFunc, len(o.converters))}
	for k, v := range o.converters {
		reg.byField[k] = v
	}
	o.converters = nil
	a := &FormatAdapter{options: o}
	a.converters.Store(reg)
	return a
}

// RegisterConverter adds (or replaces) the converter for fieldName.
func (a *FormatAdapter) RegisterConverter(fieldName string, fn ConverterFunc) {
	old := a.converters.Load().(*converterRegistry)
	newReg := &converterRegistry{byField: make(map[string]ConverterFunc, len(old.byField)+1)}
	for k, v := range old.byField {
		newReg.byField[k] = v
	}
	newReg.byField[fieldName] = fn
	a.converters.Store(newReg)
}

// SendStockData decodes doc, bridges it to a Node and returns the service's Stock.
func (a *FormatAdapter) SendStockData(doc string) (Stock, error) {
	const op errors.Op = "stockadapter.FormatAdapter.SendStockData"
	format := a.options.Codec.Name()
	log := a.options.Logger.With(zap.String("conversion_id", uuid.NewString()), zap.String("codec", format))

	var rec stockRecord
	if err := a.options.Codec.Decode([]byte(doc), &rec); err != nil {
		log.Debug("decode failed", zap.Error(err))
		return Stock{}, &ParseError{Format: format, Err: errors.New(op).Err(err)}
	}
	if missing := rec.missing(); len(missing) > 0 {
		err := &ParseError{Format: format, Err: errors.New(op).Errorf("missing element(s): %s", strings.Join(missing, ", "))}
		log.Debug("decode failed", zap.Error(err))
		return Stock{}, err
	}
	if err := a.applyConverters(&rec, format); err != nil {
		log.Debug("converter failed", zap.Error(err))
		return Stock{}, err
	}

	node, err := toNode(rec)
	if err != nil {
		log.Debug("bridge failed", zap.Error(err))
		return Stock{}, err
	}
	log.Debug("document bridged", zap.Stringer("node", node))

	stock, err := a.options.Service.Send(node)
	if err != nil {
		log.Debug("service rejected node", zap.Error(err))
		return Stock{}, err
	}
	log.Debug("stock data adapted", zap.Stringer("stock", stock))
	return stock, nil
}

func (a *FormatAdapter) applyConverters(rec *stockRecord, format string) error {
	const op errors.Op = "stockadapter.FormatAdapter.applyConverters"
	reg := a.converters.Load().(*converterRegistry)
	for field, fn := range reg.byField {
		if fn == nil {
			continue
		}
		text := rec.text(field)
		if text == nil {
			continue
		}
		out, err := fn(*text)
		if err != nil {
			return &ParseError{Format: format, Err: errors.New(op).Err(err).Msg(fmt.Sprintf("converting field %s", field))}
		}
		if out == nil {
			*text = ""
			continue
		}
		s, ok := out.(string)
		if !ok {
			return &TypeMismatchError{Field: field, Want: "string", Got: fmt.Sprintf("%T", out)}
		}
		*text = s
	}
	return nil
}
