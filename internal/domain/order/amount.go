package order

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses the submitted amount text. Decimal avoids the float
// drift a money field would otherwise pick up.
func ParseAmount(raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, &ValidationError{Reason: "Amount must be a decimal number."}
	}
	if v.IsNegative() {
		return decimal.Decimal{}, &ValidationError{Reason: "Amount must be a positive number."}
	}
	return v, nil
}
