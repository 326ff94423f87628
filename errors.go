package stockadapter

import "fmt"

// ParseError is returned when the source document (or the intermediate JSON)
// cannot be decoded, or when a required element is absent from it.
type ParseError struct {
	Format string // "xml", "yaml", "json"
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("stockadapter: parse %s: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MissingFieldError is returned when a generic node lacks a required key.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("stockadapter: missing field %q", e.Field)
}

// TypeMismatchError is returned when a field holds a value of the wrong type,
// e.g. a price that is not numeric.
type TypeMismatchError struct {
	Field string
	Want  string
	Got   string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("stockadapter: field %q: want %s, got %s", e.Field, e.Want, e.Got)
}
