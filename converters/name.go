package converters

import (
	"strings"

	"github.com/Station-Manager/errors"
)

// TrimSpace removes leading and trailing white space.
func TrimSpace(src any) (any, error) {
	const op errors.Op = "converters.TrimSpace"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return strings.TrimSpace(srcVal), nil
}

// UpperName normalises a ticker or company name: trimmed and upper-cased.
func UpperName(src any) (any, error) {
	const op errors.Op = "converters.UpperName"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	return strings.ToUpper(strings.TrimSpace(srcVal)), nil
}
