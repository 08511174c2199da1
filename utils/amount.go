package utils

import (
	"fmt"
	"math"
	"regexp"

	"github.com/shopspring/decimal"
)

var amountRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var maxMinorUnits = decimal.NewFromInt(math.MaxInt64)

// IsValidAmount reports whether s is a non-negative decimal with at most two places
func IsValidAmount(s string) bool {
	return amountRegex.MatchString(s)
}

// ParseAmount converts a decimal amount string, e.g. "5000.00", to minor units
func ParseAmount(amount string) (int64, error) {
	if !IsValidAmount(amount) {
		return 0, fmt.Errorf("amount [%s] format incorrect", amount)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return 0, fmt.Errorf("error parsing amount [%s]: [%v]", amount, err)
	}

	minorUnits := value.Shift(2)
	if !minorUnits.IsInteger() || minorUnits.GreaterThan(maxMinorUnits) {
		return 0, fmt.Errorf("amount [%s] out of range", amount)
	}

	return minorUnits.IntPart(), nil
}

// FormatAmount converts minor units to a fixed two decimal place string
func FormatAmount(minorUnits int64) string {
	return decimal.New(minorUnits, -2).StringFixed(2)
}
