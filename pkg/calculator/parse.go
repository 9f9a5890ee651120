package calculator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Mode selects how much of a field must be numeric.
type Mode string

const (
	// ModeLenient accepts the longest leading numeric prefix ("12abc" -> 12).
	ModeLenient Mode = "lenient"
	// ModeStrict requires the whole trimmed value to be a decimal literal.
	ModeStrict Mode = "strict"
)

// ParseMode maps a configuration value to a Mode. Empty input selects
// ModeLenient.
func ParseMode(raw string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(raw))) {
	case "", ModeLenient:
		return ModeLenient, nil
	case ModeStrict:
		return ModeStrict, nil
	default:
		return "", fmt.Errorf("calculator: unknown parsing mode %q", raw)
	}
}

const decimalLiteral = `[+-]?(?:Infinity|(?:[0-9]+\.?[0-9]*|\.[0-9]+)(?:[eE][+-]?[0-9]+)?)`

var (
	leadingDecimal = regexp.MustCompile(`^` + decimalLiteral)
	wholeDecimal   = regexp.MustCompile(`^` + decimalLiteral + `$`)
)

// Parser turns trimmed field values into numbers.
type Parser struct {
	Mode Mode
}

// Parse returns the numeric value of raw and whether any numeric portion
// was found. The value may be infinite; callers decide finiteness.
func (p Parser) Parse(raw string) (float64, bool) {
	pattern := leadingDecimal
	if p.Mode == ModeStrict {
		pattern = wholeDecimal
	}

	literal := pattern.FindString(raw)
	if literal == "" {
		return math.NaN(), false
	}

	if strings.HasSuffix(literal, "Infinity") {
		if strings.HasPrefix(literal, "-") {
			return math.Inf(-1), true
		}
		return math.Inf(1), true
	}

	value, err := strconv.ParseFloat(literal, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN(), false
	}
	return value, true
}

// Valid reports whether raw parses to a finite number.
func (p Parser) Valid(raw string) bool {
	value, ok := p.Parse(raw)
	return ok && isFinite(value)
}

// Validate reports whether fieldValue parses as a finite decimal number using
// leading-prefix semantics. The value is expected to be trimmed already.
func Validate(fieldValue string) bool {
	return Parser{Mode: ModeLenient}.Valid(fieldValue)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
