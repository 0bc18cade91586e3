package numeric

import "math"

// Lerp returns a + t·(b−a). For t=0 it returns a exactly and for t=1 it
// returns b exactly whenever b−a is representable.
func Lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// RoundLerp is Lerp rounded half-up to the nearest integer.
func RoundLerp(a, b, t float64) float64 {
	return math.Round(Lerp(a, b, t))
}

// Clamp saturates x into [lo, hi]. The bounds may be passed in either order.
// NaN is returned unchanged.
func Clamp(x, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Normalize returns the inverse of Lerp over [a, b]: a function mapping a to
// 0 and b to 1. A degenerate span yields a function that returns 0.5 for
// every input, or NaN when a itself is NaN.
func Normalize(a, b float64) func(float64) float64 {
	d := b - a
	if d != 0 && !math.IsNaN(d) {
		return func(x float64) float64 { return (x - a) / d }
	}
	c := 0.5
	if math.IsNaN(d) {
		c = math.NaN()
	}
	return func(float64) float64 { return c }
}

// Clamper returns a function saturating its input to [a, b] (either order).
func Clamper(a, b float64) func(float64) float64 {
	if a > b {
		a, b = b, a
	}
	return func(x float64) float64 { return math.Max(a, math.Min(b, x)) }
}

// IsFinite reports whether x is neither NaN nor ±Inf.
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// Extent returns the minimum and maximum of the non-NaN values in xs.
// ok is false when xs holds no comparable value.
func Extent(xs []float64) (lo, hi float64, ok bool) {
	for _, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		if !ok {
			lo, hi, ok = x, x, true
			continue
		}
		if x < lo {
			lo = x
		}
		if x > hi {
			hi = x
		}
	}
	return lo, hi, ok
}
