package ticks

import (
	"math"

	"github.com/gonum/floats"
)

// Sturges returns the bin count suggested by Sturges' formula for n
// observations: ⌈log₂ n⌉ + 1. Fewer than one observation yields 1.
func Sturges(n int) int {
	if n < 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// Scott returns the bin count suggested by Scott's normal reference rule
// over the finite values of sample. A sample without spread yields 1.
func Scott(sample []float64) int {
	xs := finite(sample)
	n := len(xs)
	if n < 2 {
		return 1
	}
	d := deviation(xs)
	if d == 0 {
		return 1
	}
	return int(math.Ceil((floats.Max(xs) - floats.Min(xs)) * math.Cbrt(float64(n)) / (3.49 * d)))
}

// FreedmanDiaconis returns the bin count suggested by the Freedman–Diaconis
// rule, which uses the interquartile range instead of the deviation.
func FreedmanDiaconis(sample []float64) int {
	xs := SortedFinite(sample)
	n := len(xs)
	if n < 2 {
		return 1
	}
	iqr := QuantileSorted(xs, 0.75) - QuantileSorted(xs, 0.25)
	if iqr == 0 {
		return 1
	}
	return int(math.Ceil((xs[n-1] - xs[0]) / (2 * iqr * math.Pow(float64(n), -1.0/3))))
}

// Thresholds returns the nice bin boundaries strictly inside the extent of
// sample for roughly count bins. A count below one is replaced by Sturges.
// The result is empty when the sample has fewer than two distinct values.
func Thresholds(sample []float64, count int) []float64 {
	xs := finite(sample)
	if len(xs) == 0 {
		return []float64{}
	}
	if count < 1 {
		count = Sturges(len(xs))
	}
	lo, hi := floats.Min(xs), floats.Max(xs)
	out := make([]float64, 0, count)
	for _, t := range Ticks(lo, hi, count) {
		if t > lo && t < hi {
			out = append(out, t)
		}
	}
	return out
}

// deviation is the sample standard deviation (n−1 denominator).
func deviation(xs []float64) float64 {
	mean := floats.Sum(xs) / float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - mean) * (x - mean)
	}
	return math.Sqrt(ss / float64(len(xs)-1))
}
