package cart

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// ParsePrice coerces a loosely typed price (JSON number, numeric string or
// anything else) into a decimal. Unparseable input yields zero.
func ParsePrice(raw json.RawMessage) decimal.Decimal {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return coercePrice(d)
}
