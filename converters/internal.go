// Package converters holds ready-made field converters for the stock adapter.
// Every converter takes the raw text of a field and returns rewritten text.
package converters

import (
	"github.com/Station-Manager/errors"
)

func CheckString(op errors.Op, src any) (string, error) {
	srcVal, ok := src.(string)
	if !ok {
		return "", errors.New(op).Errorf("%s, got %T", ErrMsgNotString, src)
	}
	return srcVal, nil
}

func CheckNonEmptyString(op errors.Op, src any) (string, error) {
	srcVal, err := CheckString(op, src)
	if err != nil {
		return "", err
	}
	if srcVal == "" {
		return "", errors.New(op).Msg(ErrMsgPriceEmpty)
	}
	return srcVal, nil
}
