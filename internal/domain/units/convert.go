// Package units provides kitchen measurement conversion, rounding and
// formatting between the imperial and metric systems.
package units

import (
	"fmt"
	"strings"
)

// System identifies a unit system
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem parses a unit system name
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	default:
		return "", fmt.Errorf("unknown unit system %q", s)
	}
}

// Valid reports whether the system is one of the known systems
func (s System) Valid() bool {
	return s == Metric || s == Imperial
}

// Measurement is a quantity paired with its unit
type Measurement struct {
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type conversion struct {
	unit   string
	factor float64
}

// Imperial units and their metric counterparts.
var toMetric = map[string]conversion{
	"lbs": {unit: "kg", factor: 0.453592},
	"lb":  {unit: "kg", factor: 0.453592},
	"oz":  {unit: "g", factor: 28.3495},

	"cups":   {unit: "ml", factor: 236.588},
	"cup":    {unit: "ml", factor: 236.588},
	"tbsp":   {unit: "ml", factor: 14.787},
	"tsp":    {unit: "ml", factor: 4.929},
	"fl oz":  {unit: "ml", factor: 29.5735},
	"quart":  {unit: "L", factor: 0.946353},
	"qt":     {unit: "L", factor: 0.946353},
	"gallon": {unit: "L", factor: 3.78541},
	"gal":    {unit: "L", factor: 3.78541},
	"pint":   {unit: "ml", factor: 473.176},
	"pt":     {unit: "ml", factor: 473.176},

	"inch":   {unit: "cm", factor: 2.54},
	"in":     {unit: "cm", factor: 2.54},
	"inches": {unit: "cm", factor: 2.54},
}

// Metric units and their imperial counterparts. This is not the inverse of
// toMetric: ml always lands on cups and L on quarts.
var toImperial = map[string]conversion{
	"kg": {unit: "lbs", factor: 2.20462},
	"g":  {unit: "oz", factor: 0.035274},
	"ml": {unit: "cups", factor: 0.00422675},
	"l":  {unit: "quart", factor: 1.05669},
	"cm": {unit: "in", factor: 0.393701},
}

func normalize(unit string) string {
	return strings.ToLower(strings.TrimSpace(unit))
}

func lookup(unit string, target System) (conversion, bool) {
	var c conversion
	var ok bool
	switch target {
	case Metric:
		c, ok = toMetric[normalize(unit)]
	case Imperial:
		c, ok = toImperial[normalize(unit)]
	}
	return c, ok
}

// Convertible reports whether unit has an entry in the table that converts
// into target.
func Convertible(unit string, target System) bool {
	_, ok := lookup(unit, target)
	return ok
}

// Convert converts quantity expressed in unit into the target system.
// Units without a table entry are returned untouched and unrounded.
func Convert(quantity float64, unit string, target System) Measurement {
	c, ok := lookup(unit, target)
	if !ok {
		return Measurement{Quantity: quantity, Unit: unit}
	}
	return Measurement{
		Quantity: RoundToNice(quantity * c.factor),
		Unit:     c.unit,
	}
}
