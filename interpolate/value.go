package interpolate

import (
	stdcolor "image/color"
	"sort"
	"time"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/numeric"
)

// Value is the closed union of dynamically typed interpolation endpoints.
type Value interface {
	isValue()
}

// Variants of Value.
type (
	NumberValue float64
	StringValue string
	BoolValue   bool
	DateValue   time.Time
	ArrayValue  []Value
	ObjectValue map[string]Value
	ColorValue  struct{ color.Color }
)

func (NumberValue) isValue() {}
func (StringValue) isValue() {}
func (BoolValue) isValue()   {}
func (DateValue) isValue()   {}
func (ArrayValue) isValue()  {}
func (ObjectValue) isValue() {}
func (ColorValue) isValue()  {}

// ValueOf lifts a Go value into the Value union. Numbers (of any width),
// strings, booleans, time.Time, colors, slices and string-keyed maps are
// recognised; anything else, nil included, yields nil.
func ValueOf(v any) Value {
	switch x := v.(type) {
	case nil:
		return nil
	case Value:
		return x
	case string:
		return StringValue(x)
	case bool:
		return BoolValue(x)
	case time.Time:
		return DateValue(x)
	case color.Color:
		return ColorValue{x}
	case stdcolor.Color:
		return ColorValue{color.From(x)}
	case []Value:
		return ArrayValue(x)
	case []float64:
		out := make(ArrayValue, len(x))
		for i, f := range x {
			out[i] = NumberValue(f)
		}
		return out
	case []string:
		out := make(ArrayValue, len(x))
		for i, s := range x {
			out[i] = StringValue(s)
		}
		return out
	case []any:
		out := make(ArrayValue, len(x))
		for i, e := range x {
			out[i] = ValueOf(e)
		}
		return out
	case map[string]any:
		out := make(ObjectValue, len(x))
		for k, e := range x {
			out[k] = ValueOf(e)
		}
		return out
	case map[string]float64:
		out := make(ObjectValue, len(x))
		for k, f := range x {
			out[k] = NumberValue(f)
		}
		return out
	}
	if f, ok := numeric.ToNumber(v); ok {
		return NumberValue(f)
	}
	return nil
}

// Native lowers a Value back to plain Go: float64, string, bool,
// time.Time, color.Color, []any or map[string]any.
func Native(v Value) any {
	switch x := v.(type) {
	case NumberValue:
		return float64(x)
	case StringValue:
		return string(x)
	case BoolValue:
		return bool(x)
	case DateValue:
		return time.Time(x)
	case ColorValue:
		return x.Color
	case ArrayValue:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = Native(e)
		}
		return out
	case ObjectValue:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = Native(e)
		}
		return out
	}
	return nil
}

// Dynamic blends two dynamic values, choosing the strategy from b:
//
//	nil, BoolValue          → constant b
//	NumberValue             → Number (a coerced to a number)
//	ColorValue              → RGB
//	StringValue             → RGB when b parses as a color (emitting rgb()
//	                          text), otherwise String
//	DateValue               → Date
//	ArrayValue, ObjectValue → element-wise, shaped like b
func Dynamic(a, b Value) Interpolator[Value] {
	return DynamicIn(SpaceRGB)(a, b)
}

// DynamicIn is Dynamic with colors blended in space.
func DynamicIn(space Space) Factory[Value] {
	var f Factory[Value]
	colors := ColorIn(space)
	f = func(a, b Value) Interpolator[Value] {
		switch y := b.(type) {
		case NumberValue:
			x := NumberValue(toNumber(a))
			g := Number(float64(x), float64(y))
			return func(t float64) Value { return NumberValue(g(t)) }
		case ColorValue:
			g := colors(toColor(a), y.Color)
			return func(t float64) Value {
				if t == 1 {
					return y
				}
				return ColorValue{g(t)}
			}
		case StringValue:
			if c, err := color.Parse(string(y)); err == nil {
				g := colors(toColor(a), c)
				return func(t float64) Value {
					if t == 1 {
						return y
					}
					return StringValue(g(t).RGB().FormatRGB())
				}
			}
			g := String(toString(a), string(y))
			return func(t float64) Value { return StringValue(g(t)) }
		case DateValue:
			x, _ := numeric.ToTime(Native(a))
			g := Date(x, time.Time(y))
			return func(t float64) Value { return DateValue(g(t)) }
		case ArrayValue:
			xs, _ := a.(ArrayValue)
			n := min(len(xs), len(y))
			parts := make([]Interpolator[Value], n)
			for i := 0; i < n; i++ {
				parts[i] = f(xs[i], y[i])
			}
			return func(t float64) Value {
				out := make(ArrayValue, len(y))
				copy(out, y)
				for i, p := range parts {
					out[i] = p(t)
				}
				return out
			}
		case ObjectValue:
			xs, _ := a.(ObjectValue)
			keys := make([]string, 0, len(y))
			for k := range y {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			parts := make(map[string]Interpolator[Value], len(y))
			for _, k := range keys {
				if av, ok := xs[k]; ok {
					parts[k] = f(av, y[k])
				}
			}
			return func(t float64) Value {
				out := make(ObjectValue, len(y))
				for k, v := range y {
					if p, ok := parts[k]; ok {
						out[k] = p(t)
					} else {
						out[k] = v
					}
				}
				return out
			}
		}
		return Constant(b)
	}
	return f
}

// Any is Dynamic over plain Go values: Any("10px", "20px")(0.5) is
// "15px".
func Any(a, b any) Interpolator[any] {
	g := Dynamic(ValueOf(a), ValueOf(b))
	return func(t float64) any { return Native(g(t)) }
}

// AnyIn is Any with colors blended in space.
func AnyIn(space Space) Factory[any] {
	vf := DynamicIn(space)
	return func(a, b any) Interpolator[any] {
		g := vf(ValueOf(a), ValueOf(b))
		return func(t float64) any { return Native(g(t)) }
	}
}

func toNumber(v Value) float64 {
	switch x := v.(type) {
	case NumberValue:
		return float64(x)
	case nil:
		return 0
	}
	f, ok := numeric.ToNumber(Native(v))
	if !ok {
		return nan
	}
	return f
}

func toString(v Value) string {
	switch x := v.(type) {
	case StringValue:
		return string(x)
	case NumberValue:
		return FormatNumber(float64(x))
	case ColorValue:
		return x.Color.RGB().FormatRGB()
	}
	return ""
}

func toColor(v Value) color.Color {
	switch x := v.(type) {
	case ColorValue:
		return x.Color
	case StringValue:
		if c, err := color.Parse(string(x)); err == nil {
			return c
		}
	}
	return color.NewRGBA(nan, nan, nan, nan)
}
