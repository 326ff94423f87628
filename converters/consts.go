package converters

const (
	ErrMsgNotString   = "Given parameter not a string"
	ErrMsgPriceEmpty  = "Price text cannot be empty."
	ErrMsgPriceFormat = "Price text is not a number after removing formatting"
)
