package plotkit

import (
	"fmt"
	stdcolor "image/color"
	"math"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
	"gonum.org/v1/plot/palette"
)

// ColorMap exposes an interpolator over [0, 1] as a palette.ColorMap on
// [Min, Max]. Alpha multiplies the opacity of every color.
type ColorMap struct {
	interp   interpolate.Interpolator[color.RGB]
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*ColorMap)(nil)

// NewColorMap returns a color map on [0, 1] with full alpha. interp may
// blend in any color space; samples are converted to RGB.
//
//	cm := plotkit.NewColorMap(interpolate.Lab(color.MustParse("white"), color.MustParse("steelblue")))
func NewColorMap[C color.Color](interp interpolate.Interpolator[C]) *ColorMap {
	return &ColorMap{
		interp: func(u float64) color.RGB { return interp(u).RGB() },
		min:    0,
		max:    1,
		alpha:  1,
	}
}

// At implements palette.ColorMap. Values outside [Min, Max] return the
// end color together with palette.ErrUnderflow or palette.ErrOverflow.
func (m *ColorMap) At(v float64) (stdcolor.Color, error) {
	if math.IsNaN(v) {
		return nil, palette.ErrNaN
	}
	if m.max <= m.min {
		return nil, fmt.Errorf("plotkit: color map range [%v, %v] is empty", m.min, m.max)
	}
	u := (v - m.min) / (m.max - m.min)
	switch {
	case u < 0:
		return m.at(0), palette.ErrUnderflow
	case u > 1:
		return m.at(1), palette.ErrOverflow
	}
	return m.at(u), nil
}

func (m *ColorMap) at(u float64) color.RGB {
	c := m.interp(u)
	return c.WithOpacity(c.Opacity * m.alpha)
}

func (m *ColorMap) Max() float64 { return m.max }
func (m *ColorMap) SetMax(v float64) { m.max = v }
func (m *ColorMap) Min() float64 { return m.min }
func (m *ColorMap) SetMin(v float64) { m.min = v }
func (m *ColorMap) Alpha() float64 { return m.alpha }
func (m *ColorMap) SetAlpha(a float64) { m.alpha = math.Max(0, math.Min(1, a)) }

// Palette implements palette.ColorMap with n evenly spaced samples.
func (m *ColorMap) Palette(n int) palette.Palette {
	out := make(Palette, 0, n)
	for _, c := range interpolate.Quantize(m.at, n) {
		out = append(out, c)
	}
	return out
}

// Palette is a fixed list of colors.
type Palette []stdcolor.Color

var _ palette.Palette = Palette(nil)

// Colors implements palette.Palette.
func (p Palette) Colors() []stdcolor.Color { return append([]stdcolor.Color(nil), p...) }

// Sample returns n colors taken evenly from interp over [0, 1].
func Sample[C color.Color](interp interpolate.Interpolator[C], n int) Palette {
	return NewColorMap(interp).Palette(n).(Palette)
}
