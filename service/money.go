package service

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// minusSign is the typographic minus used when rendering negative amounts.
const minusSign = "−"

// currencyUnit is appended to every formatted amount.
const currencyUnit = "AED"

// RoundMoney rounds to the nearest whole currency unit, half away from
// zero. Negative zero is normalized to zero.
func RoundMoney(x float64) float64 {
	r := math.Round(x)
	if r == 0 {
		return 0
	}
	return r
}

// ToRate converts a 0..100 percent to a 0..1 rate.
func ToRate(pct float64) float64 {
	return pct / 100
}

// ToPct converts a 0..1 rate to a 0..100 percent.
func ToPct(rate float64) float64 {
	return rate * 100
}

// FormatMoney renders a whole-unit amount with thousands separators and the
// currency suffix, e.g. "1,234,567 AED". Negative amounts use a minus glyph
// rather than the ASCII hyphen.
func FormatMoney(x float64) string {
	r := RoundMoney(x)
	s := groupThousands(strconv.FormatFloat(math.Abs(r), 'f', 0, 64))
	if r < 0 {
		return minusSign + s + " " + currencyUnit
	}
	return s + " " + currencyUnit
}

// FormatPct renders a 0..100 percent with one decimal, e.g. "24.3%".
func FormatPct(x float64) string {
	return fmt.Sprintf("%.1f%%", x)
}

// ParseMoney extracts a rounded amount from free-form text. Unparseable
// input yields 0, never an error: these run on live keystrokes.
func ParseMoney(s string) float64 {
	v, err := strconv.ParseFloat(stripNonNumeric(s), 64)
	if err != nil {
		return 0
	}
	return RoundMoney(v)
}

// ParsePct extracts a percent value from free-form text, 0 on failure.
func ParsePct(s string) float64 {
	v, err := strconv.ParseFloat(stripNonNumeric(s), 64)
	if err != nil {
		return 0
	}
	return v
}

// stripNonNumeric keeps digits, dot and minus. The typographic minus from
// FormatMoney is normalized first so formatted negatives survive a
// round-trip through ParseMoney.
func stripNonNumeric(s string) string {
	s = strings.ReplaceAll(s, minusSign, "-")
	return strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			return r
		}
		return -1
	}, s)
}

// groupThousands inserts comma separators into a plain digit string.
func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
