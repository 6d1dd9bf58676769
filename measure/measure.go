// Package measure provides unit-carrying lengths for part dimensions.
// All values normalise to millimeters, the canonical unit the kernel
// works in.
package measure

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Conversion ratios to millimeters.
const (
	millimeterRatio = 1.0
	inchRatio       = 25.4
)

// Unit suffixes accepted by Parse.
const (
	UnitMillimeter = "mm"
	UnitInch       = "in"
)

// ValidUnits contains all unit suffixes Parse accepts.
var ValidUnits = []string{UnitMillimeter, UnitInch}

// Measure is a length with a unit. Value returns the length in
// millimeters regardless of the unit it was constructed with.
type Measure interface {
	Value() float64
	Unit() string
}

// Millimeter is a length expressed in millimeters.
type Millimeter float64

// Value returns the length in millimeters.
func (m Millimeter) Value() float64 { return float64(m) * millimeterRatio }

// Unit returns the unit suffix.
func (m Millimeter) Unit() string { return UnitMillimeter }

func (m Millimeter) String() string { return formatValue(float64(m)) + UnitMillimeter }

// Inch is a length expressed in inches.
type Inch float64

// Value returns the length in millimeters.
func (in Inch) Value() float64 { return float64(in) * inchRatio }

// Unit returns the unit suffix.
func (in Inch) Unit() string { return UnitInch }

func (in Inch) String() string { return formatValue(float64(in)) + UnitInch }

// Compound scales a base measure by a count, e.g. 80 segments of 3/8 in.
type Compound struct {
	Base  Measure
	Count float64
}

// NewCompound returns a measure worth count copies of base.
func NewCompound(base Measure, count float64) Compound {
	return Compound{Base: base, Count: count}
}

// Value returns the total length in millimeters.
func (c Compound) Value() float64 { return c.Base.Value() * c.Count }

// Unit returns the unit suffix of the base measure.
func (c Compound) Unit() string { return c.Base.Unit() }

func (c Compound) String() string {
	return fmt.Sprintf("%sx%s", formatValue(c.Count), c.Base)
}

// Parse converts a string like "12mm", "0.5in" or "3/8in" into a
// Measure. A bare number is treated as millimeters. Fractions are only
// accepted with an explicit unit suffix.
func Parse(s string) (Measure, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return nil, fmt.Errorf("empty measure")
	}

	unit := UnitMillimeter
	num := s
	for _, u := range ValidUnits {
		if strings.HasSuffix(s, u) {
			unit = u
			num = strings.TrimSpace(strings.TrimSuffix(s, u))
			break
		}
	}
	if num == "" {
		return nil, fmt.Errorf("measure %q has no numeric value", s)
	}

	v, err := parseNumber(num)
	if err != nil {
		return nil, fmt.Errorf("invalid measure %q: %w (valid units: %s)", s, err, ValidUnitsString())
	}

	switch unit {
	case UnitInch:
		return Inch(v), nil
	default:
		return Millimeter(v), nil
	}
}

// ValidUnitsString returns a comma-separated list of valid unit
// suffixes for error messages.
func ValidUnitsString() string {
	return strings.Join(ValidUnits, ", ")
}

// FormatMM renders a millimeter value for logs and CLI output, rounded
// to hundredths, the practical print tolerance.
func FormatMM(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64) + UnitMillimeter
}

// parseNumber handles plain decimals and simple fractions like "3/8".
func parseNumber(s string) (float64, error) {
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
		if err != nil {
			return 0, err
		}
		d, err := strconv.ParseFloat(strings.TrimSpace(den), 64)
		if err != nil {
			return 0, err
		}
		if d == 0 {
			return 0, fmt.Errorf("zero denominator")
		}
		return n / d, nil
	}
	return strconv.ParseFloat(s, 64)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
