package color

import (
	"fmt"
	"math"
	"strings"
)

// RGB is an sRGB color. Channels are nominally on [0, 255] but are kept
// unclamped so that out-of-gamut intermediate results survive conversion;
// NaN marks an undefined channel.
type RGB struct {
	R, G, B float64
	Opacity float64
}

// NewRGB returns an opaque RGB color.
func NewRGB(r, g, b float64) RGB {
	return RGB{R: r, G: g, B: b, Opacity: 1}
}

// NewRGBA returns an RGB color with the given opacity.
func NewRGBA(r, g, b, opacity float64) RGB {
	return RGB{R: r, G: g, B: b, Opacity: opacity}
}

// hex builds an opaque color from 0xRRGGBB.
func hex(n uint32) RGB {
	return NewRGB(float64(n>>16&0xff), float64(n>>8&0xff), float64(n&0xff))
}

func (c RGB) RGB() RGB { return c }
func (c RGB) Alpha() float64 { return c.Opacity }
func (c RGB) String() string { return c.FormatRGB() }
func (c RGB) RGBA() (r, g, b, a uint32) { return rgba(c) }

// WithOpacity returns a copy of c with the given opacity.
func (c RGB) WithOpacity(o float64) RGB {
	c.Opacity = o
	return c
}

// Brighter scales every channel by (1/0.7)^k.
func (c RGB) Brighter(k float64) RGB {
	f := math.Pow(brighter, k)
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f, Opacity: c.Opacity}
}

// Darker scales every channel by 0.7^k.
func (c RGB) Darker(k float64) RGB {
	f := math.Pow(darker, k)
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f, Opacity: c.Opacity}
}

// Clamp rounds channels to integers on [0, 255] and opacity to [0, 1];
// undefined channels become 0 and undefined opacity 1.
func (c RGB) Clamp() RGB {
	return RGB{R: clampi(c.R), G: clampi(c.G), B: clampi(c.B), Opacity: clampa(c.Opacity)}
}

func (c RGB) Displayable() bool {
	return -0.5 <= c.R && c.R < 255.5 &&
		-0.5 <= c.G && c.G < 255.5 &&
		-0.5 <= c.B && c.B < 255.5 &&
		0 <= c.Opacity && c.Opacity <= 1
}

// FormatHex returns #rrggbb, ignoring opacity.
func (c RGB) FormatHex() string {
	return fmt.Sprintf("#%02x%02x%02x", int(clampi(c.R)), int(clampi(c.G)), int(clampi(c.B)))
}

// FormatHex8 returns #rrggbbaa.
func (c RGB) FormatHex8() string {
	a := int(math.Round(clampa(c.Opacity) * 255))
	return fmt.Sprintf("%s%02x", c.FormatHex(), a)
}

// FormatRGB returns rgb(r, g, b), or rgba(r, g, b, a) when not opaque.
func (c RGB) FormatRGB() string {
	a := clampa(c.Opacity)
	var sb strings.Builder
	if a == 1 {
		sb.WriteString("rgb(")
	} else {
		sb.WriteString("rgba(")
	}
	fmt.Fprintf(&sb, "%s, %s, %s", num(clampi(c.R)), num(clampi(c.G)), num(clampi(c.B)))
	if a != 1 {
		sb.WriteString(", ")
		sb.WriteString(num(a))
	}
	sb.WriteByte(')')
	return sb.String()
}
