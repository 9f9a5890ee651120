package calculator

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// exponentThreshold is the magnitude from which products are rendered in
// exponent notation instead of fixed two-decimal form.
const exponentThreshold = 1e21

// Format renders value rounded to two decimals, dropping a redundant ".00"
// suffix. Ties round away from zero. Non-finite values are rejected.
func Format(value float64) (string, error) {
	if !isFinite(value) {
		return "", fmt.Errorf("format %v: %w", value, ErrUnexpected)
	}

	if math.Abs(value) >= exponentThreshold {
		return strconv.FormatFloat(value, 'g', -1, 64), nil
	}

	text := toFixed2(value)
	text = strings.TrimSuffix(text, ".00")
	if text == "-0" {
		text = "0"
	}
	return text, nil
}

// toFixed2 rounds on the exact binary value so 1.005 (stored slightly below
// the tie) renders as "1.00" while 0.125 renders as "0.13".
func toFixed2(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	scaled := new(big.Float).SetPrec(256).SetFloat64(value)
	scaled.Mul(scaled, big.NewFloat(100))

	cents, _ := scaled.Int(nil)
	remainder := new(big.Float).SetPrec(256).Sub(scaled, new(big.Float).SetInt(cents))
	if remainder.Cmp(big.NewFloat(0.5)) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return sign + digits[:len(digits)-2] + "." + digits[len(digits)-2:]
}
