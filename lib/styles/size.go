package styles

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit is a CSS length unit.
type Unit string

const (
	Px   Unit = "px"
	Ex   Unit = "ex"
	Em   Unit = "em"
	Ch   Unit = "ch"
	Rem  Unit = "rem"
	Vw   Unit = "vw"
	Vh   Unit = "vh"
	Vmin Unit = "vmin"
	Vmax Unit = "vmax"
	Pct  Unit = "%"
)

// Measure is a length usable in a theme scale.
type Measure interface {
	fmt.Stringer
	Scale(factor float64) Measure
}

// Size is a flat CSS length.
type Size struct {
	Value float64
	Unit  Unit
}

// Sz is shorthand for Size{Value: v, Unit: unit}.
func Sz(v float64, unit Unit) Size { return Size{Value: v, Unit: unit} }

// String renders the size. Pixel and character sizes are rounded to whole
// numbers; other units keep up to two decimals. Zero renders as "0".
func (s Size) String() string {
	return formatLength(s.Value, s.Unit)
}

// Mul scales the size. Non-numeric operands leave the size unchanged.
func (s Size) Mul(v any) Size {
	if f, ok := number(v); ok {
		return Size{Value: s.Value * f, Unit: s.Unit}
	}
	return s
}

// Add increments the size. Non-numeric operands leave the size unchanged.
func (s Size) Add(v any) Size {
	if f, ok := number(v); ok {
		return Size{Value: s.Value + f, Unit: s.Unit}
	}
	return s
}

// Sub decrements the size. Non-numeric operands leave the size unchanged.
func (s Size) Sub(v any) Size {
	if f, ok := number(v); ok {
		return Size{Value: s.Value - f, Unit: s.Unit}
	}
	return s
}

// Scale implements Measure.
func (s Size) Scale(factor float64) Measure { return s.Mul(factor) }

// SizeClamp is a fluid length rendered as a CSS clamp() expression. Min and
// Max are expressed in Unit; the fluid term adds Pref in Viewport units to
// the minimum.
type SizeClamp struct {
	Min      float64
	Pref     float64
	Max      float64
	Unit     Unit
	Viewport Unit
}

// Clamp builds a SizeClamp in rem with a vw fluid term.
func Clamp(min, pref, max float64) SizeClamp {
	return SizeClamp{Min: min, Pref: pref, Max: max, Unit: Rem, Viewport: Vw}
}

func (s SizeClamp) String() string {
	lo := formatLength(s.Min, s.Unit)
	return fmt.Sprintf("clamp(%s, %s + %s, %s)",
		lo, lo, formatLength(s.Pref, s.Viewport), formatLength(s.Max, s.Unit))
}

// Mul scales all three terms. Non-numeric operands leave the size unchanged.
func (s SizeClamp) Mul(v any) SizeClamp {
	return s.apply(v, func(a, b float64) float64 { return a * b })
}

// Add increments all three terms. Non-numeric operands leave the size unchanged.
func (s SizeClamp) Add(v any) SizeClamp {
	return s.apply(v, func(a, b float64) float64 { return a + b })
}

// Sub decrements all three terms. Non-numeric operands leave the size unchanged.
func (s SizeClamp) Sub(v any) SizeClamp {
	return s.apply(v, func(a, b float64) float64 { return a - b })
}

// Scale implements Measure.
func (s SizeClamp) Scale(factor float64) Measure { return s.Mul(factor) }

func (s SizeClamp) apply(v any, op func(a, b float64) float64) SizeClamp {
	f, ok := number(v)
	if !ok {
		return s
	}
	s.Min, s.Pref, s.Max = op(s.Min, f), op(s.Pref, f), op(s.Max, f)
	return s
}

func formatLength(v float64, unit Unit) string {
	if unit == Px || unit == Ch {
		return strconv.FormatFloat(v, 'f', 0, 64) + string(unit)
	}
	out := strings.TrimRight(strings.TrimRight(strconv.FormatFloat(v, 'f', 2, 64), "0"), ".")
	if out == "" || out == "0" || out == "-0" {
		return "0"
	}
	return out + string(unit)
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
