package swr

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DecimalConvention tells which character of a number's text is the decimal point and
// which one is a thousands separator.
//
// The zero value is ThousandsComma.
type DecimalConvention int

const (
	// ThousandsComma reads "1,234.56": commas group thousands, the point is decimal.
	ThousandsComma DecimalConvention = iota
	// DecimalComma reads "1.234,56": the rightmost comma is decimal, points group thousands.
	DecimalComma
)

func (c DecimalConvention) String() string {
	switch c {
	case ThousandsComma:
		return "thousands-comma"
	case DecimalComma:
		return "decimal-comma"
	default:
		return fmt.Sprintf("DecimalConvention(%d)", int(c))
	}
}

// ParseDecimalConvention parses the name of a convention as printed by String.
// "en" and "eu" are accepted as short aliases.
func ParseDecimalConvention(s string) (DecimalConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thousands-comma", "thousands", "en":
		return ThousandsComma, nil
	case "decimal-comma", "decimal", "eu":
		return DecimalComma, nil
	default:
		return ThousandsComma, fmt.Errorf("unknown decimal convention %q, want thousands-comma or decimal-comma", s)
	}
}

// Set implements flag.Value.
func (c *DecimalConvention) Set(s string) error {
	v, err := ParseDecimalConvention(s)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Normalize rewrites the text of a number into a plain numeric string, with '.' as the
// only separator left. The text is not otherwise validated.
func (c DecimalConvention) Normalize(s string) string {
	switch c {
	case DecimalComma:
		s = strings.ReplaceAll(s, ".", ",")
		if i := strings.LastIndexByte(s, ','); i >= 0 {
			s = s[:i] + "." + s[i+1:]
		}
		return strings.ReplaceAll(s, ",", "")
	default:
		return strings.ReplaceAll(s, ",", "")
	}
}

// ParseValue normalizes s according to c and parses it as an exact decimal.
func (c DecimalConvention) ParseValue(s string) (decimal.Decimal, error) {
	n := c.Normalize(strings.TrimSpace(s))
	v, err := decimal.NewFromString(n)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return v, nil
}
