package journal

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal-formatted string into an exact-precision
// amount. Monetary values never pass through binary floating point: they are
// parsed, stored and compared as arbitrary-precision decimals, and serialized
// back with Decimal.String().
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrParse, s)
	}
	return d, nil
}
