package interpolate_test

import (
	"math"
	"testing"
	"time"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRGB(t *testing.T, want, got color.RGB, tol float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, tol, "R")
	assert.InDelta(t, want.G, got.G, tol, "G")
	assert.InDelta(t, want.B, got.B, tol, "B")
	assert.InDelta(t, want.Opacity, got.Opacity, 1e-9, "opacity")
}

var (
	red  = color.NewRGB(255, 0, 0)
	blue = color.NewRGB(0, 0, 255)
)

// 1) TestNumber_Endpoints checks the endpoint and identity laws.
func TestNumber_Endpoints(t *testing.T) {
	f := interpolate.Number(10, 20)
	assert.Equal(t, 10.0, f(0))
	assert.Equal(t, 20.0, f(1))
	assert.Equal(t, 12.5, f(0.25))
	assert.Equal(t, 25.0, f(1.5), "extrapolates")

	g := interpolate.Number(7, 7)
	for _, x := range []float64{0, 0.3, 1} {
		assert.Equal(t, 7.0, g(x))
	}
	assert.Equal(t, 2.0, interpolate.Round(0, 3)(0.5))
}

// 2) TestHue takes the short arc and tolerates an undefined hue.
func TestHue(t *testing.T) {
	assert.Equal(t, 360.0, interpolate.Hue(350, 10)(0.5))
	assert.Equal(t, 0.0, interpolate.Hue(10, 350)(0.5))
	assert.Equal(t, 90.0, interpolate.Hue(math.NaN(), 90)(0.3))
	assert.Equal(t, 45.0, interpolate.Hue(0, 90)(0.5))
}

// 3) TestString blends embedded numbers and keeps the target's literals.
func TestString(t *testing.T) {
	f := interpolate.String("M10,10", "M20,30")
	assert.Equal(t, "M10,10", f(0))
	assert.Equal(t, "M15,20", f(0.5))
	assert.Equal(t, "M20,30", f(1))

	assert.Equal(t, "15px", interpolate.String("10px", "20px")(0.5))
	assert.Equal(t, "1.5", interpolate.String("1", "2")(0.5))
	assert.Equal(t, "b", interpolate.String("a", "b")(0.5))
	assert.Equal(t, "2.5 3.5", interpolate.String("1 2 3", "4 5")(0.5))
	assert.Equal(t, "x 4 y 7", interpolate.String("x 4 y 1", "x 4 y 13")(0.5))
	assert.Equal(t, "20.0", interpolate.String("10", "20.0")(1))
}

// 4) TestFormatNumber mirrors the decimal/exponent switch points.
func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		0:           "0",
		1e6:         "1000000",
		1e21:        "1e+21",
		1e-7:        "1e-7",
		1.5e-10:     "1.5e-10",
		-2.5:        "-2.5",
		0.000001:    "0.000001",
		math.Inf(1): "Infinity",
	}
	for in, want := range cases {
		assert.Equal(t, want, interpolate.FormatNumber(in), "%v", in)
	}
	assert.Equal(t, "NaN", interpolate.FormatNumber(math.NaN()))
}

// 5) TestRGB covers plain, gamma-corrected and transparent blends.
func TestRGB(t *testing.T) {
	f := interpolate.RGB(red, blue)
	assertRGB(t, red, f(0), 1e-12)
	assertRGB(t, blue, f(1), 1e-12)
	assertRGB(t, color.NewRGB(127.5, 0, 127.5), f(0.5), 1e-12)
	assert.Equal(t, "rgb(128, 0, 128)", f(0.5).String())

	black, white := color.NewRGB(0, 0, 0), color.NewRGB(255, 255, 255)
	g := interpolate.RGBGamma(2.2)(black, white)
	assert.InDelta(t, 186.0837, g(0.5).R, 1e-3)
	assertRGB(t, white, g(1), 1e-9)

	tr := color.MustParse("transparent")
	h := interpolate.RGB(tr, red)
	assertRGB(t, color.NewRGBA(255, 0, 0, 0.5), h(0.5), 1e-12)
}

// 6) TestColorSpaces checks endpoints in every space and hue direction.
func TestColorSpaces(t *testing.T) {
	a := color.MustParse("steelblue")
	b := color.MustParse("#f0e68c")
	spaces := []interpolate.Space{
		interpolate.SpaceRGB, interpolate.SpaceHSL, interpolate.SpaceHSLLong,
		interpolate.SpaceLab, interpolate.SpaceHCL, interpolate.SpaceHCLLong,
		interpolate.SpaceCubehelix, interpolate.SpaceCubehelixLong,
	}
	for _, sp := range spaces {
		f := interpolate.ColorIn(sp)(a, b)
		assertRGB(t, a.RGB(), f(0).RGB(), 0.01)
		assertRGB(t, b.RGB(), f(1).RGB(), 0.01)
	}

	white := color.MustParse("white")
	for _, sp := range spaces {
		f := interpolate.ColorIn(sp)(white, a)
		assertRGB(t, white.RGB(), f(0).RGB().Clamp(), 1e-6)
		assertRGB(t, a.RGB(), f(1).RGB(), 0.01)
		g := interpolate.ColorIn(sp)(a, white)
		assertRGB(t, white.RGB(), g(1).RGB().Clamp(), 1e-6)
	}

	assertRGB(t, color.NewRGB(255, 0, 255), interpolate.HSL(red, blue)(0.5).RGB(), 1e-9)
	assertRGB(t, color.NewRGB(0, 255, 0), interpolate.HSLLong(red, blue)(0.5).RGB(), 1e-9)

	s, err := interpolate.ParseSpace("hcl-long")
	require.NoError(t, err)
	assert.Equal(t, interpolate.SpaceHCLLong, s)
	_, err = interpolate.ParseSpace("xyz")
	assert.ErrorIs(t, err, interpolate.ErrUnknownSpace)
}

// 7) TestSplines passes through the end control points.
func TestSplines(t *testing.T) {
	f := interpolate.Basis([]float64{0, 10})
	assert.InDelta(t, 0, f(0), 1e-12)
	assert.InDelta(t, 5, f(0.5), 1e-12)
	assert.InDelta(t, 10, f(1), 1e-12)
	assert.InDelta(t, 10, f(2), 1e-12, "clamped")

	c := interpolate.BasisClosed([]float64{0, 6, 0})
	assert.InDelta(t, c(0), c(1), 1e-12)
	assert.InDelta(t, c(0.25), c(1.25), 1e-12)

	g := interpolate.RGBBasis([]color.Color{red, blue})
	assertRGB(t, red, g(0), 1e-9)
	assertRGB(t, blue, g(1), 1e-9)
}

// 8) TestComposition covers Discrete, Piecewise and Quantize.
func TestComposition(t *testing.T) {
	d := interpolate.Discrete([]string{"a", "b", "c"})
	assert.Equal(t, "a", d(0))
	assert.Equal(t, "b", d(0.5))
	assert.Equal(t, "c", d(1))
	assert.Equal(t, "a", d(-1))

	p := interpolate.Piecewise(interpolate.Number, []float64{0, 10, 100})
	assert.Equal(t, 0.0, p(0))
	assert.Equal(t, 5.0, p(0.25))
	assert.Equal(t, 10.0, p(0.5))
	assert.Equal(t, 55.0, p(0.75))
	assert.Equal(t, 100.0, p(1))

	assert.Equal(t, []float64{0, 5, 10}, interpolate.Quantize(interpolate.Number(0, 10), 3))
	assert.Empty(t, interpolate.Quantize(interpolate.Number(0, 10), 0))
}

// 9) TestDate blends instants through epoch milliseconds.
func TestDate(t *testing.T) {
	t0 := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	f := interpolate.Date(t0, t0.Add(10*time.Second))
	assert.True(t, f(0.5).Equal(t0.Add(5*time.Second)))
	assert.True(t, f(1).Equal(t0.Add(10*time.Second)))
}

// 10) TestAny dispatches on the target's kind.
func TestAny(t *testing.T) {
	assert.Equal(t, "15px", interpolate.Any("10px", "20px")(0.5))
	assert.Equal(t, 2.5, interpolate.Any(nil, 5)(0.5))
	assert.Equal(t, true, interpolate.Any(false, true)(0.2))

	c := interpolate.Any("red", "blue")
	assert.Equal(t, "rgb(128, 0, 128)", c(0.5))
	assert.Equal(t, "blue", c(1))

	arr := interpolate.Any([]any{1.0, "a"}, []any{3.0, "b", true})(0.5)
	assert.Equal(t, []any{2.0, "b", true}, arr)

	obj := interpolate.Any(
		map[string]any{"x": 0.0, "y": "dropped"},
		map[string]any{"x": 10.0, "z": 5.0},
	)(0.5)
	assert.Equal(t, map[string]any{"x": 5.0, "z": 5.0}, obj)

	lab := interpolate.AnyIn(interpolate.SpaceLab)(red, blue)(1)
	got, ok := lab.(color.Color)
	require.True(t, ok)
	assertRGB(t, blue, got.RGB(), 1e-9)
}
