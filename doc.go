// Package lvscale maps data values onto visual values: positions, lengths
// and colors. It is a Go take on the d3 scale stack.
//
// 🚀 What is inside?
//
//	numeric/     coercion of loose values to numbers and instants, bisection
//	ticks/       nice tick planning, R-7 quantiles, bin thresholds, calendar intervals
//	color/       RGB, HSL, Lab, HCL and Cubehelix colors with CSS parsing
//	interpolate/ typed and dynamic interpolators, splines, piecewise blends
//	scale/       continuous, sequential, discretizing and discrete scales
//	plotkit/     gonum/plot tickers, normalizers and palettes
//	cmd/lvscale  command line front end
//
// ✨ Why lvscale?
//
//   - Generic where it pays: Continuous[R], Ordinal[K, R], Band[K]
//   - Dynamic when it must: scale.Make("log", domain, range) from config
//   - Safe to share: every scale guards its state with a sync.RWMutex
//   - Exact ticks: no drift from repeated addition
//
// Quick example:
//
//	s, _ := scale.NewLinear([]float64{0, 100}, []float64{0, 960})
//	s.Map(25)        // 240
//	s.Ticks(5)       // [0 20 40 60 80 100]
//
//	c, _ := scale.Make("linear", []any{0, 1}, []any{"red", "blue"})
//	c.Map(0.5)       // "rgb(128, 0, 128)"
//
//	go get github.com/katalvlaran/lvscale
package lvscale
