package ticks

import "math"

// Thresholds between the candidate step multipliers 1, 2, 5 and 10,
// taken at the geometric means √2, √10 and √50.
var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

// Spec is the integer description of a tick sequence: ticks are i·Inc for
// i in [I1, I2] when Inc > 0, or i/−Inc when Inc < 0.
type Spec struct {
	I1, I2 float64
	Inc    float64
}

// Len returns the number of ticks described by s.
func (s Spec) Len() int {
	if !(s.I2 >= s.I1) {
		return 0
	}
	return int(s.I2-s.I1) + 1
}

// Value returns the k-th tick (k counted from I1).
func (s Spec) Value(k int) float64 {
	i := s.I1 + float64(k)
	if s.Inc < 0 {
		return i / -s.Inc
	}
	return i * s.Inc
}

// Step returns the tick step in domain units.
func (s Spec) Step() float64 {
	if s.Inc < 0 {
		return 1 / -s.Inc
	}
	return s.Inc
}

// TickSpec computes the integer tick description for an ascending span.
// When rounding inward empties the range and count is small, the count is
// doubled once so that at least one tick survives.
func TickSpec(start, stop, count float64) Spec {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= e10:
		factor = 10
	case e >= e5:
		factor = 5
	case e >= e2:
		factor = 2
	}

	var i1, i2, inc float64
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return TickSpec(start, stop, count*2)
	}
	return Spec{I1: i1, I2: i2, Inc: inc}
}

// Ticks returns approximately count+1 uniformly spaced, nicely rounded
// values between start and stop inclusive. The order of the result follows
// the order of the arguments.
//
// Example:
//
//	Ticks(0, 97, 10)  // [0 10 20 30 40 50 60 70 80 90]
//	Ticks(1, 0, 5)    // [1 0.8 0.6 0.4 0.2 0]
func Ticks(start, stop float64, count int) []float64 {
	return TicksF(start, stop, float64(count))
}

// TicksF is Ticks with a fractional count. Log scales plan ticks in
// exponent space, where the count is a number of decades and rarely whole.
func TicksF(start, stop, c float64) []float64 {
	if !(c > 0) || math.IsNaN(start) || math.IsNaN(stop) {
		return []float64{}
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	var s Spec
	if reverse {
		s = TickSpec(stop, start, c)
	} else {
		s = TickSpec(start, stop, c)
	}
	n := s.Len()
	if n == 0 || math.IsInf(s.I1, 0) || math.IsInf(s.I2, 0) {
		return []float64{}
	}
	out := make([]float64, n)
	if reverse {
		for k := 0; k < n; k++ {
			i := s.I2 - float64(k)
			if s.Inc < 0 {
				out[k] = i / -s.Inc
			} else {
				out[k] = i * s.Inc
			}
		}
		return out
	}
	for k := 0; k < n; k++ {
		out[k] = s.Value(k)
	}
	return out
}

// TickIncrement is like TickStep but requires start ≤ stop and returns an
// integer: a positive result is the step, a negative result −k means the
// step is 1/k. Encoding fractional steps as inverses keeps them exact.
func TickIncrement(start, stop float64, count int) float64 {
	return TickSpec(start, stop, float64(count)).Inc
}

// TickStep returns the signed difference between adjacent ticks for the
// given span. It is negative when stop < start.
func TickStep(start, stop float64, count int) float64 {
	reverse := stop < start
	var inc float64
	if reverse {
		inc = TickIncrement(stop, start, count)
	} else {
		inc = TickIncrement(start, stop, count)
	}
	step := inc
	if inc < 0 {
		step = 1 / -inc
	}
	if reverse {
		return -step
	}
	return step
}

// Nice widens [start, stop] so that both ends fall on a multiple of the tick
// step chosen for count. The process repeats until the step stops changing,
// since widening can change the step itself. start must not exceed stop.
// When no stable step is found the span is returned unchanged.
func Nice(start, stop float64, count int) (float64, float64) {
	lo, hi := start, stop
	prestep := math.NaN()
	for iter := 0; iter < 10; iter++ {
		step := TickIncrement(lo, hi, count)
		switch {
		case step == prestep:
			return lo, hi
		case step > 0 && !math.IsInf(step, 0):
			lo = math.Floor(lo/step) * step
			hi = math.Ceil(hi/step) * step
		case step < 0 && !math.IsInf(step, 0):
			lo = math.Ceil(lo*step) / step
			hi = math.Floor(hi*step) / step
		default:
			return start, stop
		}
		prestep = step
	}
	return start, stop
}
