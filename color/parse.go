package color

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

const (
	reI = `\s*([+-]?\d+)\s*`
	reN = `\s*([+-]?(?:\d*\.)?\d+(?:[eE][+-]?\d+)?)\s*`
	reP = reN + `%`
)

var (
	reHex        = regexp.MustCompile(`^#([0-9a-f]{3,8})$`)
	reRGBInteger = regexp.MustCompile(`^rgb\(` + reI + `,` + reI + `,` + reI + `\)$`)
	reRGBPercent = regexp.MustCompile(`^rgb\(` + reP + `,` + reP + `,` + reP + `\)$`)
	reRGBAInt    = regexp.MustCompile(`^rgba\(` + reI + `,` + reI + `,` + reI + `,` + reN + `\)$`)
	reRGBAPct    = regexp.MustCompile(`^rgba\(` + reP + `,` + reP + `,` + reP + `,` + reN + `\)$`)
	reHSL        = regexp.MustCompile(`^hsl\(` + reN + `,` + reP + `,` + reP + `\)$`)
	reHSLA       = regexp.MustCompile(`^hsla\(` + reN + `,` + reP + `,` + reP + `,` + reN + `\)$`)
)

// Named returns the CSS named color, if any. The table is the SVG 1.1 set
// plus rebeccapurple from CSS Color Level 4.
func Named(name string) (RGB, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "rebeccapurple" {
		return hex(0x663399), true
	}
	c, ok := colornames.Map[name]
	if !ok {
		return RGB{}, false
	}
	return NewRGBA(float64(c.R), float64(c.G), float64(c.B), float64(c.A)/255), true
}

// Parse reads a CSS color specifier. Hex and rgb() forms yield RGB, hsl()
// forms yield HSL; "transparent" is RGB with undefined channels and zero
// opacity. Input is case-insensitive and may carry surrounding blanks.
func Parse(s string) (Color, error) {
	f := strings.ToLower(strings.TrimSpace(s))
	if m := reHex.FindStringSubmatch(f); m != nil {
		if c, ok := parseHex(m[1]); ok {
			return c, nil
		}
	}
	if m := reRGBInteger.FindStringSubmatch(f); m != nil {
		return rgbaOf(atof(m[1]), atof(m[2]), atof(m[3]), 1), nil
	}
	if m := reRGBPercent.FindStringSubmatch(f); m != nil {
		return rgbaOf(atof(m[1])*255/100, atof(m[2])*255/100, atof(m[3])*255/100, 1), nil
	}
	if m := reRGBAInt.FindStringSubmatch(f); m != nil {
		return rgbaOf(atof(m[1]), atof(m[2]), atof(m[3]), atof(m[4])), nil
	}
	if m := reRGBAPct.FindStringSubmatch(f); m != nil {
		return rgbaOf(atof(m[1])*255/100, atof(m[2])*255/100, atof(m[3])*255/100, atof(m[4])), nil
	}
	if m := reHSL.FindStringSubmatch(f); m != nil {
		return hslaOf(atof(m[1]), atof(m[2])/100, atof(m[3])/100, 1), nil
	}
	if m := reHSLA.FindStringSubmatch(f); m != nil {
		return hslaOf(atof(m[1]), atof(m[2])/100, atof(m[3])/100, atof(m[4])), nil
	}
	if c, ok := Named(f); ok {
		return c, nil
	}
	if f == "transparent" {
		return RGB{R: math.NaN(), G: math.NaN(), B: math.NaN(), Opacity: 0}, nil
	}
	return nil, fmt.Errorf("%q: %w", s, ErrParse)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseRGB is Parse followed by conversion to RGB.
func ParseRGB(s string) (RGB, error) {
	c, err := Parse(s)
	if err != nil {
		return RGB{}, err
	}
	return c.RGB(), nil
}

func parseHex(digits string) (RGB, bool) {
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	m := uint32(n)
	switch len(digits) {
	case 6:
		return hex(m), true
	case 3:
		return NewRGB(
			float64(m>>8&0xf|m>>4&0xf0),
			float64(m>>4&0xf|m&0xf0),
			float64((m&0xf)<<4|m&0xf),
		), true
	case 8:
		return rgbaOf(float64(m>>24&0xff), float64(m>>16&0xff), float64(m>>8&0xff), float64(m&0xff)/0xff), true
	case 4:
		return rgbaOf(
			float64(m>>12&0xf|m>>8&0xf0),
			float64(m>>8&0xf|m>>4&0xf0),
			float64(m>>4&0xf|m&0xf0),
			float64((m&0xf)<<4|m&0xf)/0xff,
		), true
	}
	return RGB{}, false
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

func rgbaOf(r, g, b, a float64) RGB {
	if a <= 0 {
		r, g, b = math.NaN(), math.NaN(), math.NaN()
	}
	return RGB{R: r, G: g, B: b, Opacity: a}
}

func hslaOf(h, s, l, a float64) HSL {
	switch {
	case a <= 0:
		h, s, l = math.NaN(), math.NaN(), math.NaN()
	case l <= 0 || l >= 1:
		h, s = math.NaN(), math.NaN()
	case s <= 0:
		h = math.NaN()
	}
	return HSL{H: h, S: s, L: l, Opacity: a}
}
