// Package numeric converts raw form text into values the calculators can use.
//
// Every calculator gates on Ready: a field counts as provided only when it
// parses to a finite, non-zero number. Zero therefore reads as "not entered".
package numeric

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the layout of date form fields
const DateLayout = "2006-01-02"

// Optional is a parsed number that may be absent
type Optional struct {
	Value float64
	Valid bool
}

// Parse converts text to a finite number. Empty, non-numeric, NaN and
// infinite input yield an absent value.
func Parse(text string) Optional {
	s := strings.TrimSpace(text)
	if s == "" {
		return Optional{}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Optional{}
	}
	return Optional{Value: v, Valid: true}
}

// Ready applies the gating rule: the value must be present and non-zero.
func Ready(text string) (float64, bool) {
	o := Parse(text)
	if !o.Valid || o.Value == 0 {
		return 0, false
	}
	return o.Value, true
}

// OrZero returns the parsed value, or 0 when absent
func OrZero(text string) float64 {
	return Parse(text).Value
}

// Count parses a whole-number field, truncating any fraction.
// It is gated like Ready.
func Count(text string) (int, bool) {
	v, ok := Ready(text)
	if !ok {
		return 0, false
	}
	n := int(math.Trunc(v))
	if n == 0 {
		return 0, false
	}
	return n, true
}

// ParseDate parses a YYYY-MM-DD calendar date in UTC
func ParseDate(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Round2 rounds x to two decimal places, half away from zero.
func Round2(x float64) float64 {
	return decimal.NewFromFloat(x).Round(2).InexactFloat64()
}

// Format renders v the shortest way that reads back to the same number
func Format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
