package interpolate

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvscale/color"
)

// RGB blends two colors channel by channel in sRGB. NaN channels (for
// example the channels of "transparent") take the other endpoint's value.
func RGB(a, b color.Color) Interpolator[color.RGB] {
	return RGBGamma(1)(a, b)
}

// RGBGamma returns an RGB interpolator builder that blends channels in
// gamma-encoded space. Opacity is always blended linearly.
func RGBGamma(gamma float64) func(a, b color.Color) Interpolator[color.RGB] {
	ch := gammaChannel(gamma)
	return func(a, b color.Color) Interpolator[color.RGB] {
		s, e := a.RGB(), b.RGB()
		r, g, bl := ch(s.R, e.R), ch(s.G, e.G), ch(s.B, e.B)
		op := noGamma(s.Opacity, e.Opacity)
		return func(t float64) color.RGB {
			return color.RGB{R: r(t), G: g(t), B: bl(t), Opacity: op(t)}
		}
	}
}

// RGBBasis returns a B-spline through the sRGB channels of colors. Missing
// channels count as zero and the result is fully opaque.
func RGBBasis(colors []color.Color) Interpolator[color.RGB] {
	return rgbSpline(Basis, colors)
}

// RGBBasisClosed is the cyclic variant of RGBBasis.
func RGBBasisClosed(colors []color.Color) Interpolator[color.RGB] {
	return rgbSpline(BasisClosed, colors)
}

func rgbSpline(spline func([]float64) Interpolator[float64], colors []color.Color) Interpolator[color.RGB] {
	n := len(colors)
	r, g, b := make([]float64, n), make([]float64, n), make([]float64, n)
	for i, c := range colors {
		v := c.RGB()
		r[i], g[i], b[i] = orZero(v.R), orZero(v.G), orZero(v.B)
	}
	fr, fg, fb := spline(r), spline(g), spline(b)
	return func(t float64) color.RGB {
		return color.RGB{R: fr(t), G: fg(t), B: fb(t), Opacity: 1}
	}
}

func orZero(x float64) float64 {
	if math.IsNaN(x) {
		return 0
	}
	return x
}

// HSL blends in HSL, taking the shorter way round the hue circle.
func HSL(a, b color.Color) Interpolator[color.HSL] { return hsl(a, b, Hue) }

// HSLLong blends in HSL without wrapping the hue.
func HSLLong(a, b color.Color) Interpolator[color.HSL] { return hsl(a, b, noGamma) }

func hsl(a, b color.Color, hue func(a, b float64) Interpolator[float64]) Interpolator[color.HSL] {
	s, e := color.ToHSL(a), color.ToHSL(b)
	h, sat, l, op := hue(s.H, e.H), noGamma(s.S, e.S), noGamma(s.L, e.L), noGamma(s.Opacity, e.Opacity)
	return pinned(s, e, func(t float64) color.HSL {
		return color.HSL{H: h(t), S: sat(t), L: l(t), Opacity: op(t)}
	})
}

// Lab blends in CIELAB, which is roughly perceptually uniform.
func Lab(a, b color.Color) Interpolator[color.Lab] {
	s, e := color.ToLab(a), color.ToLab(b)
	l, x, y, op := noGamma(s.L, e.L), noGamma(s.A, e.A), noGamma(s.B, e.B), noGamma(s.Opacity, e.Opacity)
	return pinned(s, e, func(t float64) color.Lab {
		return color.Lab{L: l(t), A: x(t), B: y(t), Opacity: op(t)}
	})
}

// HCL blends in CIELCh, taking the shorter way round the hue circle.
func HCL(a, b color.Color) Interpolator[color.HCL] { return hcl(a, b, Hue) }

// HCLLong blends in CIELCh without wrapping the hue.
func HCLLong(a, b color.Color) Interpolator[color.HCL] { return hcl(a, b, noGamma) }

func hcl(a, b color.Color, hue func(a, b float64) Interpolator[float64]) Interpolator[color.HCL] {
	s, e := color.ToHCL(a), color.ToHCL(b)
	h, c, l, op := hue(s.H, e.H), noGamma(s.C, e.C), noGamma(s.L, e.L), noGamma(s.Opacity, e.Opacity)
	return pinned(s, e, func(t float64) color.HCL {
		return color.HCL{H: h(t), C: c(t), L: l(t), Opacity: op(t)}
	})
}

// Cubehelix blends in Cubehelix along the shorter hue arc.
func Cubehelix(a, b color.Color) Interpolator[color.Cubehelix] {
	return CubehelixGamma(1)(a, b)
}

// CubehelixLong blends in Cubehelix without wrapping the hue.
func CubehelixLong(a, b color.Color) Interpolator[color.Cubehelix] {
	return CubehelixLongGamma(1)(a, b)
}

// CubehelixGamma returns a Cubehelix builder whose lightness is eased by
// t^gamma.
func CubehelixGamma(gamma float64) func(a, b color.Color) Interpolator[color.Cubehelix] {
	return func(a, b color.Color) Interpolator[color.Cubehelix] { return cubehelix(a, b, gamma, Hue) }
}

// CubehelixLongGamma is CubehelixGamma without hue wrapping.
func CubehelixLongGamma(gamma float64) func(a, b color.Color) Interpolator[color.Cubehelix] {
	return func(a, b color.Color) Interpolator[color.Cubehelix] { return cubehelix(a, b, gamma, noGamma) }
}

func cubehelix(a, b color.Color, gamma float64, hue func(a, b float64) Interpolator[float64]) Interpolator[color.Cubehelix] {
	s, e := color.ToCubehelix(a), color.ToCubehelix(b)
	h, sat, l, op := hue(s.H, e.H), noGamma(s.S, e.S), noGamma(s.L, e.L), noGamma(s.Opacity, e.Opacity)
	return pinned(s, e, func(t float64) color.Cubehelix {
		return color.Cubehelix{H: h(t), S: sat(t), L: l(math.Pow(t, gamma)), Opacity: op(t)}
	})
}

// pinned returns the converted endpoints themselves at t=0 and t=1. A hue or
// chroma left undefined by an achromatic endpoint is borrowed from the other
// endpoint in between, but never at the endpoint it belongs to.
func pinned[T any](s, e T, f Interpolator[T]) Interpolator[T] {
	return func(t float64) T {
		switch t {
		case 0:
			return s
		case 1:
			return e
		}
		return f(t)
	}
}

// Space names a color space used to blend colors.
type Space string

// Supported color spaces.
const (
	SpaceRGB           Space = "rgb"
	SpaceHSL           Space = "hsl"
	SpaceHSLLong       Space = "hsl-long"
	SpaceLab           Space = "lab"
	SpaceHCL           Space = "hcl"
	SpaceHCLLong       Space = "hcl-long"
	SpaceCubehelix     Space = "cubehelix"
	SpaceCubehelixLong Space = "cubehelix-long"
)

// ParseSpace resolves a space name, accepting the constants above.
func ParseSpace(name string) (Space, error) {
	s := Space(name)
	switch s {
	case SpaceRGB, SpaceHSL, SpaceHSLLong, SpaceLab, SpaceHCL, SpaceHCLLong, SpaceCubehelix, SpaceCubehelixLong:
		return s, nil
	}
	return "", fmt.Errorf("%q: %w", name, ErrUnknownSpace)
}

// ColorIn returns the color factory for space. Unknown spaces fall back to
// RGB.
func ColorIn(space Space) Factory[color.Color] {
	switch space {
	case SpaceHSL:
		return widen(HSL)
	case SpaceHSLLong:
		return widen(HSLLong)
	case SpaceLab:
		return widen(Lab)
	case SpaceHCL:
		return widen(HCL)
	case SpaceHCLLong:
		return widen(HCLLong)
	case SpaceCubehelix:
		return widen(Cubehelix)
	case SpaceCubehelixLong:
		return widen(CubehelixLong)
	default:
		return widen(RGB)
	}
}

func widen[C color.Color](f func(a, b color.Color) Interpolator[C]) Factory[color.Color] {
	return func(a, b color.Color) Interpolator[color.Color] {
		g := f(a, b)
		return func(t float64) color.Color { return g(t) }
	}
}
