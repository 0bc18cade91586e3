package color

import (
	stdcolor "image/color"
	"math"
	"strconv"
)

// Brightness factors: Darker multiplies the lightness-like channel by
// darker^k, Brighter by (1/darker)^k.
const (
	darker   = 0.7
	brighter = 1 / darker
)

const (
	degrees = 180 / math.Pi
	radians = math.Pi / 180
)

// Color is implemented by every color space in this package.
type Color interface {
	stdcolor.Color

	// RGB converts the color into the canonical sRGB representation.
	RGB() RGB

	// Alpha returns the opacity on [0, 1].
	Alpha() float64

	// Displayable reports whether the color fits the sRGB gamut, i.e.
	// whether Clamp would leave it unchanged.
	Displayable() bool

	// String formats the color in CSS functional notation.
	String() string
}

// rgba implements image/color.Color for any Color via its RGB form.
func rgba(c RGB) (r, g, b, a uint32) {
	c = c.Clamp()
	return stdcolor.NRGBA{
		R: uint8(c.R),
		G: uint8(c.G),
		B: uint8(c.B),
		A: uint8(math.Round(c.Opacity * 255)),
	}.RGBA()
}

func clampi(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(255, math.Round(v)))
}

func clampa(o float64) float64 {
	if math.IsNaN(o) {
		return 1
	}
	return math.Max(0, math.Min(1, o))
}

func clamph(h float64) float64 {
	if math.IsNaN(h) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clampt(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(0, math.Min(1, v))
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

// From converts any image/color.Color into RGB. Colors from this package
// keep their full precision; other implementations go through their
// non-premultiplied 8-bit form.
func From(c stdcolor.Color) RGB {
	if cc, ok := c.(Color); ok {
		return cc.RGB()
	}
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB{R: float64(n.R), G: float64(n.G), B: float64(n.B), Opacity: float64(n.A) / 255}
}
