package color

import "math"

// Cubehelix basis (Green 2011).
const (
	chA    = -0.14861
	chB    = +1.78277
	chC    = -0.29227
	chD    = -0.90649
	chE    = +1.97294
	chED   = chE * chD
	chEB   = chE * chB
	chBCDA = chB*chC - chD*chA
)

// Cubehelix is a color on Dave Green's cubehelix spiral: hue in degrees,
// saturation (amplitude) and lightness on [0, 1].
type Cubehelix struct {
	H, S, L float64
	Opacity float64
}

// NewCubehelix returns an opaque Cubehelix color.
func NewCubehelix(h, s, l float64) Cubehelix {
	return Cubehelix{H: h, S: s, L: l, Opacity: 1}
}

// ToCubehelix converts c into Cubehelix.
func ToCubehelix(c Color) Cubehelix {
	if v, ok := c.(Cubehelix); ok {
		return v
	}
	o := c.RGB()
	r, g, b := o.R/255, o.G/255, o.B/255
	l := (chBCDA*b + chED*r - chEB*g) / (chBCDA + chED - chEB)
	bl := b - l
	k := (chE*(g-l) - chC*bl) / chD
	s := math.Sqrt(k*k+bl*bl) / (chE * l * (1 - l))
	h := math.NaN()
	if s != 0 && !math.IsNaN(s) {
		h = math.Atan2(k, bl)*degrees - 120
		if h < 0 {
			h += 360
		}
	}
	return Cubehelix{H: h, S: s, L: l, Opacity: o.Opacity}
}

func (c Cubehelix) Alpha() float64 { return c.Opacity }
func (c Cubehelix) String() string { return c.RGB().FormatRGB() }
func (c Cubehelix) RGBA() (r, g, b, a uint32) { return rgba(c.RGB()) }
func (c Cubehelix) Displayable() bool { return c.RGB().Displayable() }
func (c Cubehelix) FormatHex() string { return c.RGB().FormatHex() }
func (c Cubehelix) FormatHex8() string { return c.RGB().FormatHex8() }
func (c Cubehelix) FormatRGB() string { return c.RGB().FormatRGB() }
func (c Cubehelix) FormatHSL() string { return ToHSL(c.RGB().Clamp()).FormatHSL() }

// Clamp moves c into the sRGB gamut, rounding channels like RGB.Clamp.
func (c Cubehelix) Clamp() Cubehelix { return ToCubehelix(c.RGB().Clamp()) }

// WithOpacity returns a copy of c with the given opacity.
func (c Cubehelix) WithOpacity(o float64) Cubehelix {
	c.Opacity = o
	return c
}

// Brighter scales lightness by (1/0.7)^k.
func (c Cubehelix) Brighter(k float64) Cubehelix {
	c.L *= math.Pow(brighter, k)
	return c
}

// Darker scales lightness by 0.7^k.
func (c Cubehelix) Darker(k float64) Cubehelix {
	c.L *= math.Pow(darker, k)
	return c
}

func (c Cubehelix) RGB() RGB {
	h := 0.0
	if !math.IsNaN(c.H) {
		h = (c.H + 120) * radians
	}
	l := c.L
	a := 0.0
	if !math.IsNaN(c.S) {
		a = c.S * l * (1 - l)
	}
	cosh, sinh := math.Cos(h), math.Sin(h)
	return RGB{
		R:       255 * (l + a*(chA*cosh+chB*sinh)),
		G:       255 * (l + a*(chC*cosh+chD*sinh)),
		B:       255 * (l + a*(chE*cosh)),
		Opacity: c.Opacity,
	}
}
