package color

import "math"

// CIE constants: D50 white point and the piecewise cube-root breakpoints.
const (
	labK = 18
	xn   = 0.96422
	yn   = 1
	zn   = 0.82521
	t0   = 4.0 / 29
	t1   = 6.0 / 29
	t2   = 3 * t1 * t1
	t3   = t1 * t1 * t1
)

// Lab is a CIE L*a*b* color (D50). L is on [0, 100] for displayable colors;
// A and B are unbounded opponent axes. NaN in A or B means "no chroma".
type Lab struct {
	L, A, B float64
	Opacity float64
}

// NewLab returns an opaque Lab color.
func NewLab(l, a, b float64) Lab {
	return Lab{L: l, A: a, B: b, Opacity: 1}
}

// Gray returns the achromatic Lab color with lightness l.
func Gray(l float64) Lab {
	return Lab{L: l, Opacity: 1}
}

// ToLab converts c into Lab.
func ToLab(c Color) Lab {
	switch v := c.(type) {
	case Lab:
		return v
	case HCL:
		return hcl2lab(v)
	}
	o := c.RGB()
	r, g, b := rgb2lrgb(o.R), rgb2lrgb(o.G), rgb2lrgb(o.B)
	y := xyz2lab((0.2225045*r + 0.7168786*g + 0.0606169*b) / yn)
	x, z := y, y
	if r != g || g != b {
		x = xyz2lab((0.4360747*r + 0.3850649*g + 0.1430804*b) / xn)
		z = xyz2lab((0.0139322*r + 0.0971045*g + 0.7141733*b) / zn)
	}
	return Lab{L: 116*y - 16, A: 500 * (x - y), B: 200 * (y - z), Opacity: o.Opacity}
}

func (c Lab) Alpha() float64 { return c.Opacity }
func (c Lab) String() string { return c.RGB().FormatRGB() }
func (c Lab) RGBA() (r, g, b, a uint32) { return rgba(c.RGB()) }
func (c Lab) Displayable() bool { return c.RGB().Displayable() }
func (c Lab) FormatHex() string { return c.RGB().FormatHex() }
func (c Lab) FormatHex8() string { return c.RGB().FormatHex8() }
func (c Lab) FormatRGB() string { return c.RGB().FormatRGB() }
func (c Lab) FormatHSL() string { return ToHSL(c.RGB().Clamp()).FormatHSL() }

// Clamp moves c into the sRGB gamut, rounding channels like RGB.Clamp.
func (c Lab) Clamp() Lab { return ToLab(c.RGB().Clamp()) }

// WithOpacity returns a copy of c with the given opacity.
func (c Lab) WithOpacity(o float64) Lab {
	c.Opacity = o
	return c
}

// Brighter raises lightness by 18·k.
func (c Lab) Brighter(k float64) Lab {
	c.L += labK * k
	return c
}

// Darker lowers lightness by 18·k.
func (c Lab) Darker(k float64) Lab {
	c.L -= labK * k
	return c
}

func (c Lab) RGB() RGB {
	y := (c.L + 16) / 116
	x, z := y, y
	if !math.IsNaN(c.A) {
		x = y + c.A/500
	}
	if !math.IsNaN(c.B) {
		z = y - c.B/200
	}
	x = xn * lab2xyz(x)
	y = yn * lab2xyz(y)
	z = zn * lab2xyz(z)
	return RGB{
		R:       lrgb2rgb(3.1338561*x - 1.6168667*y - 0.4906146*z),
		G:       lrgb2rgb(-0.9787684*x + 1.9161415*y + 0.0334540*z),
		B:       lrgb2rgb(0.0719453*x - 0.2289914*y + 1.4052427*z),
		Opacity: c.Opacity,
	}
}

func xyz2lab(t float64) float64 {
	if t > t3 {
		return math.Cbrt(t)
	}
	return t/t2 + t0
}

func lab2xyz(t float64) float64 {
	if t > t1 {
		return t * t * t
	}
	return t2 * (t - t0)
}

func lrgb2rgb(x float64) float64 {
	if x <= 0.0031308 {
		return 255 * 12.92 * x
	}
	return 255 * (1.055*math.Pow(x, 1/2.4) - 0.055)
}

func rgb2lrgb(x float64) float64 {
	x /= 255
	if x <= 0.04045 {
		return x / 12.92
	}
	return math.Pow((x+0.055)/1.055, 2.4)
}

// HCL is the polar form of Lab: hue in degrees, chroma and luminance.
// H is NaN for grays; C is NaN for pure black and white.
type HCL struct {
	H, C, L float64
	Opacity float64
}

// NewHCL returns an opaque HCL color.
func NewHCL(h, c, l float64) HCL {
	return HCL{H: h, C: c, L: l, Opacity: 1}
}

// LCh returns the HCL color with the arguments in L, C, h order.
func LCh(l, c, h float64) HCL {
	return NewHCL(h, c, l)
}

// ToHCL converts c into HCL.
func ToHCL(c Color) HCL {
	if h, ok := c.(HCL); ok {
		return h
	}
	lab := ToLab(c)
	if lab.A == 0 && lab.B == 0 {
		ch := math.NaN()
		if 0 < lab.L && lab.L < 100 {
			ch = 0
		}
		return HCL{H: math.NaN(), C: ch, L: lab.L, Opacity: lab.Opacity}
	}
	h := math.Atan2(lab.B, lab.A) * degrees
	if h < 0 {
		h += 360
	}
	return HCL{H: h, C: math.Hypot(lab.A, lab.B), L: lab.L, Opacity: lab.Opacity}
}

func hcl2lab(c HCL) Lab {
	if math.IsNaN(c.H) {
		return Lab{L: c.L, Opacity: c.Opacity}
	}
	h := c.H * radians
	return Lab{L: c.L, A: math.Cos(h) * c.C, B: math.Sin(h) * c.C, Opacity: c.Opacity}
}

func (c HCL) RGB() RGB { return hcl2lab(c).RGB() }
func (c HCL) Alpha() float64 { return c.Opacity }
func (c HCL) String() string { return c.RGB().FormatRGB() }
func (c HCL) RGBA() (r, g, b, a uint32) { return rgba(c.RGB()) }
func (c HCL) Displayable() bool { return c.RGB().Displayable() }
func (c HCL) FormatHex() string { return c.RGB().FormatHex() }
func (c HCL) FormatHex8() string { return c.RGB().FormatHex8() }
func (c HCL) FormatRGB() string { return c.RGB().FormatRGB() }
func (c HCL) FormatHSL() string { return ToHSL(c.RGB().Clamp()).FormatHSL() }

// Clamp moves c into the sRGB gamut, rounding channels like RGB.Clamp.
func (c HCL) Clamp() HCL { return ToHCL(c.RGB().Clamp()) }

// WithOpacity returns a copy of c with the given opacity.
func (c HCL) WithOpacity(o float64) HCL {
	c.Opacity = o
	return c
}

// Brighter raises luminance by 18·k.
func (c HCL) Brighter(k float64) HCL {
	c.L += labK * k
	return c
}

// Darker lowers luminance by 18·k.
func (c HCL) Darker(k float64) HCL {
	c.L -= labK * k
	return c
}
