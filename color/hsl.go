package color

import (
	"fmt"
	"math"
)

// HSL is a color in the hue/saturation/lightness cylinder. H is in degrees,
// S and L on [0, 1]. H is NaN for grays, S is NaN for black and white.
type HSL struct {
	H, S, L float64
	Opacity float64
}

// NewHSL returns an opaque HSL color.
func NewHSL(h, s, l float64) HSL {
	return HSL{H: h, S: s, L: l, Opacity: 1}
}

// ToHSL converts c into HSL.
func ToHSL(c Color) HSL {
	if h, ok := c.(HSL); ok {
		return h
	}
	o := c.RGB()
	r, g, b := o.R/255, o.G/255, o.B/255
	lo := math.Min(r, math.Min(g, b))
	hi := math.Max(r, math.Max(g, b))
	h := math.NaN()
	s := hi - lo
	l := (hi + lo) / 2
	if s != 0 && !math.IsNaN(s) {
		switch {
		case r == hi:
			h = (g - b) / s
			if g < b {
				h += 6
			}
		case g == hi:
			h = (b-r)/s + 2
		default:
			h = (r-g)/s + 4
		}
		if l < 0.5 {
			s /= hi + lo
		} else {
			s /= 2 - hi - lo
		}
		h *= 60
	} else if l > 0 && l < 1 {
		s = 0
	} else {
		s = h
	}
	return HSL{H: h, S: s, L: l, Opacity: o.Opacity}
}

func (c HSL) Alpha() float64 { return c.Opacity }
func (c HSL) String() string { return c.FormatHSL() }
func (c HSL) RGBA() (r, g, b, a uint32) { return rgba(c.RGB()) }

// WithOpacity returns a copy of c with the given opacity.
func (c HSL) WithOpacity(o float64) HSL {
	c.Opacity = o
	return c
}

// Brighter scales lightness by (1/0.7)^k.
func (c HSL) Brighter(k float64) HSL {
	c.L *= math.Pow(brighter, k)
	return c
}

// Darker scales lightness by 0.7^k.
func (c HSL) Darker(k float64) HSL {
	c.L *= math.Pow(darker, k)
	return c
}

func (c HSL) RGB() RGB {
	h := math.Mod(c.H, 360)
	if c.H < 0 {
		h += 360
	}
	s := c.S
	if math.IsNaN(h) || math.IsNaN(s) {
		s = 0
	}
	l := c.L
	var m2 float64
	if l < 0.5 {
		m2 = l + l*s
	} else {
		m2 = l + (1-l)*s
	}
	m1 := 2*l - m2
	hr := h + 120
	if h >= 240 {
		hr = h - 240
	}
	hb := h - 120
	if h < 120 {
		hb = h + 240
	}
	return RGB{
		R:       hsl2rgb(hr, m1, m2),
		G:       hsl2rgb(h, m1, m2),
		B:       hsl2rgb(hb, m1, m2),
		Opacity: c.Opacity,
	}
}

func hsl2rgb(h, m1, m2 float64) float64 {
	var v float64
	switch {
	case h < 60:
		v = m1 + (m2-m1)*h/60
	case h < 180:
		v = m2
	case h < 240:
		v = m1 + (m2-m1)*(240-h)/60
	default:
		v = m1
	}
	return v * 255
}

// Clamp wraps hue onto [0, 360) and saturates S, L and opacity to [0, 1].
func (c HSL) Clamp() HSL {
	return HSL{H: clamph(c.H), S: clampt(c.S), L: clampt(c.L), Opacity: clampa(c.Opacity)}
}

func (c HSL) Displayable() bool {
	return (0 <= c.S && c.S <= 1 || math.IsNaN(c.S)) &&
		0 <= c.L && c.L <= 1 &&
		0 <= c.Opacity && c.Opacity <= 1
}

// FormatHSL returns hsl(h, s%, l%) or hsla(h, s%, l%, a).
func (c HSL) FormatHSL() string {
	a := clampa(c.Opacity)
	h, s, l := num(clamph(c.H)), num(clampt(c.S)*100), num(clampt(c.L)*100)
	if a == 1 {
		return fmt.Sprintf("hsl(%s, %s%%, %s%%)", h, s, l)
	}
	return fmt.Sprintf("hsla(%s, %s%%, %s%%, %s)", h, s, l, num(a))
}
