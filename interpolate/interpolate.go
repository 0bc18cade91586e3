package interpolate

import (
	"math"
	"strconv"
	"time"

	"github.com/katalvlaran/lvscale/numeric"
)

var nan = math.NaN()

// Interpolator maps t ∈ [0, 1] onto a value of type T.
type Interpolator[T any] func(t float64) T

// Factory builds an interpolator between two endpoints.
type Factory[T any] func(a, b T) Interpolator[T]

// Constant returns an interpolator that always yields v.
func Constant[T any](v T) Interpolator[T] {
	return func(float64) T { return v }
}

// Number blends two numbers linearly.
func Number(a, b float64) Interpolator[float64] {
	return func(t float64) float64 { return numeric.Lerp(a, b, t) }
}

// Round is Number rounded to the nearest integer.
func Round(a, b float64) Interpolator[float64] {
	return func(t float64) float64 { return numeric.RoundLerp(a, b, t) }
}

// Hue blends two angles in degrees along the shorter arc. The result is not
// normalised to [0, 360). A NaN endpoint is treated as equal to the other.
func Hue(a, b float64) Interpolator[float64] {
	d := b - a
	if d == 0 || math.IsNaN(d) {
		return Constant(pickDefined(a, b))
	}
	if d > 180 || d < -180 {
		d -= 360 * math.Round(d/360)
	}
	return func(t float64) float64 { return a + t*d }
}

// noGamma blends two channels linearly, treating NaN as "take the other".
func noGamma(a, b float64) Interpolator[float64] {
	d := b - a
	if d == 0 || math.IsNaN(d) {
		return Constant(pickDefined(a, b))
	}
	return func(t float64) float64 { return a + t*d }
}

// gammaChannel blends in gamma-encoded space: (a^y + t·(b^y − a^y))^(1/y).
func gammaChannel(y float64) func(a, b float64) Interpolator[float64] {
	if y == 1 {
		return noGamma
	}
	return func(a, b float64) Interpolator[float64] {
		if b-a == 0 || math.IsNaN(b-a) {
			return Constant(pickDefined(a, b))
		}
		ay := math.Pow(a, y)
		by := math.Pow(b, y) - ay
		inv := 1 / y
		return func(t float64) float64 { return math.Pow(ay+t*by, inv) }
	}
}

func pickDefined(a, b float64) float64 {
	if math.IsNaN(a) {
		return b
	}
	return a
}

// NumberArray blends two numeric slices element-wise. The result has the
// length of b; positions absent from a keep b's value.
func NumberArray(a, b []float64) Interpolator[[]float64] {
	n := min(len(a), len(b))
	return func(t float64) []float64 {
		c := make([]float64, len(b))
		copy(c, b)
		for i := 0; i < n; i++ {
			c[i] = a[i]*(1-t) + b[i]*t
		}
		return c
	}
}

// Date blends two instants through their epoch-millisecond values. The
// result is expressed in b's location.
func Date(a, b time.Time) Interpolator[time.Time] {
	x, y := numeric.TimeToNumber(a), numeric.TimeToNumber(b)
	loc := b.Location()
	return func(t float64) time.Time {
		switch t {
		case 0:
			return a.In(loc)
		case 1:
			return b
		}
		return numeric.NumberToTime(x*(1-t)+y*t, loc)
	}
}

// Discrete returns an interpolator that picks values[floor(t·n)], clamped
// to the slice bounds.
func Discrete[T any](values []T) Interpolator[T] {
	n := len(values)
	return func(t float64) T {
		i := int(math.Floor(t * float64(n)))
		if i > n-1 {
			i = n - 1
		}
		if i < 0 {
			i = 0
		}
		return values[i]
	}
}

// Piecewise chains interp over consecutive pairs of values so that t
// travels evenly through every stop.
func Piecewise[T any](interp Factory[T], values []T) Interpolator[T] {
	n := len(values) - 1
	if n < 1 {
		if n == 0 {
			return Constant(values[0])
		}
		var zero T
		return Constant(zero)
	}
	segs := make([]Interpolator[T], n)
	for i := 0; i < n; i++ {
		segs[i] = interp(values[i], values[i+1])
	}
	return func(t float64) T {
		x := t * float64(n)
		i := int(math.Max(0, math.Min(float64(n-1), math.Floor(x))))
		return segs[i](x - float64(i))
	}
}

// Quantize samples interp at n uniformly spaced points from 0 to 1.
func Quantize[T any](interp Interpolator[T], n int) []T {
	if n <= 0 {
		return []T{}
	}
	out := make([]T, n)
	if n == 1 {
		out[0] = interp(0)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = interp(float64(i) / float64(n-1))
	}
	return out
}

// Basis returns a uniform cubic B-spline through values (which must hold at
// least two entries). The spline passes through the first and last values.
func Basis(values []float64) Interpolator[float64] {
	n := len(values) - 1
	return func(t float64) float64 {
		var i int
		switch {
		case t <= 0:
			t, i = 0, 0
		case t >= 1:
			t, i = 1, n-1
		default:
			i = int(math.Floor(t * float64(n)))
		}
		v1, v2 := values[i], values[i+1]
		v0 := 2*v1 - v2
		if i > 0 {
			v0 = values[i-1]
		}
		v3 := 2*v2 - v1
		if i < n-1 {
			v3 = values[i+2]
		}
		return basis((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
	}
}

// BasisClosed is the cyclic variant of Basis: t wraps around and the
// control points form a loop.
func BasisClosed(values []float64) Interpolator[float64] {
	n := len(values)
	return func(t float64) float64 {
		t = math.Mod(t, 1)
		if t < 0 {
			t++
		}
		i := int(math.Floor(t * float64(n)))
		v0 := values[(i+n-1)%n]
		v1 := values[i%n]
		v2 := values[(i+1)%n]
		v3 := values[(i+2)%n]
		return basis((t-float64(i)/float64(n))*float64(n), v0, v1, v2, v3)
	}
}

func basis(t1, v0, v1, v2, v3 float64) float64 {
	t2 := t1 * t1
	t3 := t2 * t1
	return ((1-3*t1+3*t2-t3)*v0 +
		(4-6*t2+3*t3)*v1 +
		(1+3*t1+3*t2-3*t3)*v2 +
		t3*v3) / 6
}

// FormatNumber renders x the way a JavaScript number converts to a string:
// plain decimal notation for magnitudes in [1e-6, 1e21) and exponent form
// outside that band.
func FormatNumber(x float64) string {
	switch {
	case math.IsNaN(x):
		return "NaN"
	case math.IsInf(x, 1):
		return "Infinity"
	case math.IsInf(x, -1):
		return "-Infinity"
	case x == 0:
		return "0"
	}
	ax := math.Abs(x)
	if ax >= 1e-6 && ax < 1e21 {
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	s := strconv.FormatFloat(x, 'e', -1, 64)
	// Go writes e+06 / e-07; JavaScript writes e+6 / e-7.
	for i := 0; i < len(s); i++ {
		if s[i] == 'e' && i+2 < len(s) && s[i+2] == '0' && i+3 < len(s) {
			s = s[:i+2] + s[i+3:]
			break
		}
	}
	return s
}
