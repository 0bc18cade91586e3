// Package plotkit plugs lvscale transforms and color ramps into
// gonum.org/v1/plot.
//
// 🚀 Adapters:
//
//	Ticker      plot.Ticker: axis ticks and labels from a scale.Transform
//	TimeTicker  plot.Ticker: calendar ticks for axes holding Unix seconds
//	Normalizer  plot.Normalizer: log, pow and symlog axes
//	ColorMap    palette.ColorMap over an interpolator on [0, 1]
//	Palette     palette.Palette of n evenly sampled colors
//
// ✨ Usage:
//
//	p := plot.New()
//	p.Y.Scale = plotkit.Normalizer{Transform: scale.Log{Base: 10}}
//	p.Y.Tick.Marker = plotkit.Ticker{Transform: scale.Log{Base: 10}}
//
// Ticks whose label the transform blanks out (the crowded digits of a log
// decade) are emitted as minor ticks with an empty label, which is how
// gonum/plot tells minor from major ticks.
package plotkit
