package stockadapter

// Builder provides a fluent API to construct a FormatAdapter with options and converters pre-registered.
type Builder struct {
	opts  []Option
	convs map[string]ConverterFunc
}

// NewBuilder creates a new builder.
func NewBuilder() *Builder {
	return &Builder{convs: make(map[string]ConverterFunc)}
}

// WithOptions appends adapter options to the builder.
func (b *Builder) WithOptions(opts ...Option) *Builder { b.opts = append(b.opts, opts...); return b }

// AddConverter registers a converter by field name. Later calls for the same field win,
// including over converters passed through WithOptions.
func (b *Builder) AddConverter(field string, fn ConverterFunc) *Builder {
	b.convs[field] = fn
	return b
}

// Build constructs a FormatAdapter, seeding its converter registry in one shot.
func (b *Builder) Build() *FormatAdapter {
	opts := make([]Option, 0, len(b.opts)+len(b.convs))
	opts = append(opts, b.opts...)
	for k, v := range b.convs {
		opts = append(opts, WithConverter(k, v))
	}
	return NewXMLToJSONAdapter(opts...)
}
