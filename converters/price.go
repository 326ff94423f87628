package converters

import (
	"strconv"
	"strings"

	"github.com/Station-Manager/errors"
)

// priceNoise is stripped from price text; these characters carry formatting, not value.
const priceNoise = "$€£¥, \t\r\n"

// StripPriceFormatting turns display text such as "$1,234.50" into "1234.50".
// The result must parse as a float, otherwise an error is returned.
func StripPriceFormatting(src any) (any, error) {
	const op errors.Op = "converters.StripPriceFormatting"
	srcVal, err := CheckNonEmptyString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	cleaned := strings.Map(func(r rune) rune {
		if strings.ContainsRune(priceNoise, r) {
			return -1
		}
		return r
	}, srcVal)
	if _, err = strconv.ParseFloat(cleaned, 64); err != nil {
		return nil, errors.New(op).Err(err).Msg(ErrMsgPriceFormat)
	}
	return cleaned, nil
}
