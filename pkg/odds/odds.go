package odds

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrZeroOdds is returned when American odds of 0 are converted.
	ErrZeroOdds = errors.New("american odds cannot be zero")
	// ErrMalformedOdds is returned when an American odds string cannot be parsed.
	ErrMalformedOdds = errors.New("malformed american odds")
	// ErrInvalidDecimal is returned for decimal odds that carry no profit (<= 1).
	ErrInvalidDecimal = errors.New("decimal odds must be greater than 1")
)

// American is a price in American format: +150 pays 150 profit on a 100
// stake, -110 needs a 110 stake for 100 profit.
type American int

// ParseAmerican parses "+150", "150" or "-110".
func ParseAmerican(s string) (American, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty value", ErrMalformedOdds)
	}

	v, err := strconv.Atoi(strings.TrimPrefix(trimmed, "+"))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedOdds, s)
	}
	if v == 0 {
		return 0, fmt.Errorf("%w: %q", ErrZeroOdds, s)
	}

	return American(v), nil
}

// String renders the odds with an explicit sign for non-negative values.
func (a American) String() string {
	if a >= 0 {
		return "+" + strconv.Itoa(int(a))
	}
	return strconv.Itoa(int(a))
}

// MarshalText implements encoding.TextMarshaler.
func (a American) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *American) UnmarshalText(text []byte) error {
	v, err := ParseAmerican(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// AmericanToDecimal converts American odds to decimal odds.
// Example: +150 -> 2.50, -110 -> 1.909
func AmericanToDecimal(a American) (float64, error) {
	switch {
	case a > 0:
		return float64(a)/100 + 1, nil
	case a < 0:
		return 100/math.Abs(float64(a)) + 1, nil
	default:
		return 0, ErrZeroOdds
	}
}

// DecimalToAmerican converts decimal odds back to American odds, rounded to
// the nearest integer. Prices of 2.0 and above are quoted as underdogs,
// prices below 2.0 as favorites.
func DecimalToAmerican(decimal float64) (American, error) {
	if math.IsNaN(decimal) || decimal <= 1 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDecimal, decimal)
	}

	if decimal >= 2 {
		return American(math.Round((decimal - 1) * 100)), nil
	}
	return American(math.Round(-100 / (decimal - 1))), nil
}

// FormatAmerican converts decimal odds to their display form, e.g. "+650".
func FormatAmerican(decimal float64) (string, error) {
	a, err := DecimalToAmerican(decimal)
	if err != nil {
		return "", err
	}
	return a.String(), nil
}

// DecimalToProbability returns the break-even win probability implied by
// decimal odds.
func DecimalToProbability(decimal float64) float64 {
	return 1 / decimal
}

// CalculateParlayOdds multiplies the legs' decimal odds. An empty parlay is 1.0.
func CalculateParlayOdds(decimals []float64) float64 {
	combined := 1.0
	for _, d := range decimals {
		combined *= d
	}
	return combined
}

// CalculateParlayPayout returns the total return (stake plus profit).
func CalculateParlayPayout(wager, parlayDecimal float64) float64 {
	return wager * parlayDecimal
}
