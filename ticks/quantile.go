package ticks

import (
	"math"
	"sort"

	"github.com/wangjohn/quickselect"
)

// Quantile returns the p-quantile of the finite values in sample using the
// R-7 method (linear interpolation between the order statistics around
// (n−1)·p). The sample is not modified and need not be sorted; a working
// copy is partially ordered with quickselect instead of being fully sorted.
func Quantile(sample []float64, p float64) (float64, error) {
	if math.IsNaN(p) {
		return math.NaN(), ErrBadProbability
	}
	buf := finite(sample)
	n := len(buf)
	if n == 0 {
		return math.NaN(), ErrEmptySample
	}
	if p <= 0 || n < 2 {
		return minOf(buf), nil
	}
	if p >= 1 {
		return maxOf(buf), nil
	}
	i := float64(n-1) * p
	i0 := int(math.Floor(i))
	if err := quickselect.QuickSelect(quickselect.Float64Slice(buf), i0+1); err != nil {
		return math.NaN(), err
	}
	v0 := maxOf(buf[:i0+1])
	v1 := minOf(buf[i0+1:])
	return v0 + (v1-v0)*(i-float64(i0)), nil
}

// QuantileSorted is Quantile for a sample already sorted in ascending order.
// It does not allocate. An empty sample yields NaN.
func QuantileSorted(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 || math.IsNaN(p) {
		return math.NaN()
	}
	if p <= 0 || n < 2 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	i := float64(n-1) * p
	i0 := int(math.Floor(i))
	v0, v1 := sorted[i0], sorted[i0+1]
	return v0 + (v1-v0)*(i-float64(i0))
}

// SortedFinite returns an ascending copy of the finite values in sample.
func SortedFinite(sample []float64) []float64 {
	buf := finite(sample)
	sort.Float64s(buf)
	return buf
}

func finite(sample []float64) []float64 {
	buf := make([]float64, 0, len(sample))
	for _, x := range sample {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			buf = append(buf, x)
		}
	}
	return buf
}

func minOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x < m {
			m = x
		}
	}
	return m
}

func maxOf(xs []float64) float64 {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}
