package units

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const fractionTolerance = 0.05

var fractionGlyphs = [...]struct {
	value float64
	glyph string
}{
	{0.25, "¼"},
	{0.33, "⅓"},
	{0.5, "½"},
	{0.67, "⅔"},
	{0.75, "¾"},
}

// FormatQuantity renders a quantity the way a recipe card shows it:
// 1.5 -> "1½", 0.33 -> "⅓", 3 -> "3", 2.1 -> "2.1".
func FormatQuantity(q float64) string {
	whole := math.Floor(q)
	rem := q - whole

	for _, f := range fractionGlyphs {
		if math.Abs(f.value-rem) < fractionTolerance {
			if whole == 0 {
				return f.glyph
			}
			return strconv.FormatFloat(whole, 'f', -1, 64) + f.glyph
		}
	}

	if whole == q {
		return strconv.FormatFloat(whole, 'f', -1, 64)
	}

	var digits int32 = 1
	if q < 1 {
		digits = 2
	}
	// Halves round away from zero, so 0.125 shows as 0.13
	s := decimal.NewFromFloat(q).StringFixed(digits)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// FormatMeasurement formats quantity and unit for display in the target
// system. originalUnit, when set, decides whether a conversion applies.
// Counted items ("unit", "piece", or no unit) render as a bare quantity.
func FormatMeasurement(quantity float64, unit string, target System, originalUnit string) string {
	source := originalUnit
	if source == "" {
		source = unit
	}

	m := Measurement{Quantity: quantity, Unit: unit}
	if Convertible(source, target) {
		m = Convert(quantity, source, target)
	}

	qty := FormatQuantity(m.Quantity)
	switch m.Unit {
	case "", "unit", "piece":
		return qty
	}
	return fmt.Sprintf("%s %s", qty, m.Unit)
}

// FormatDuration renders a number of minutes as "45 min", "2 hr" or
// "1 hr 30 min".
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours, rest := minutes/60, minutes%60
	if rest == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, rest)
}

// FormatTotalTime formats the combined prep and cook time.
func FormatTotalTime(prepMinutes, cookMinutes int) string {
	return FormatDuration(prepMinutes + cookMinutes)
}
