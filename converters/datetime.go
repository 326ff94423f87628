package converters

import (
	"strings"
	"time"

	"github.com/Station-Manager/errors"
)

// DatetimeToUTC rewrites RFC 3339 text into its UTC form, e.g.
// "2022-02-23T20:00:00+09:00" becomes "2022-02-23T11:00:00Z".
// Text that does not parse as RFC 3339 is returned trimmed but otherwise untouched;
// the datetime stays opaque to the adapter.
func DatetimeToUTC(src any) (any, error) {
	const op errors.Op = "converters.DatetimeToUTC"
	srcVal, err := CheckString(op, src)
	if err != nil {
		return nil, errors.New(op).Err(err)
	}
	trimmed := strings.TrimSpace(srcVal)
	t, err := time.Parse(time.RFC3339Nano, trimmed)
	if err != nil {
		return trimmed, nil
	}
	return t.UTC().Format(time.RFC3339Nano), nil
}
