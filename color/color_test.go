package color_test

import (
	stdcolor "image/color"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvscale/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRGB(t *testing.T, want, got color.RGB, tol float64) {
	t.Helper()
	assert.InDelta(t, want.R, got.R, tol, "R")
	assert.InDelta(t, want.G, got.G, tol, "G")
	assert.InDelta(t, want.B, got.B, tol, "B")
	assert.InDelta(t, want.Opacity, got.Opacity, 1e-12, "opacity")
}

// 1) TestParse_Forms covers every accepted CSS syntax.
func TestParse_Forms(t *testing.T) {
	cases := map[string]color.RGB{
		"#abc":                     color.NewRGB(0xaa, 0xbb, 0xcc),
		"#ABCDEF":                  color.NewRGB(0xab, 0xcd, 0xef),
		"#ff000080":                color.NewRGBA(255, 0, 0, 128.0/255),
		"#f008":                    color.NewRGBA(255, 0, 0, 136.0/255),
		" rgb(12, 34, 56) ":        color.NewRGB(12, 34, 56),
		"rgb(100%, 50%, 0%)":       color.NewRGB(255, 127.5, 0),
		"rgba(1, 2, 3, 0.4)":       color.NewRGBA(1, 2, 3, 0.4),
		"rgba(100%, 0%, 0%, 0.25)": color.NewRGBA(255, 0, 0, 0.25),
		"steelblue":                color.NewRGB(70, 130, 180),
		"RebeccaPurple":            color.NewRGB(0x66, 0x33, 0x99),
	}
	for in, want := range cases {
		got, err := color.ParseRGB(in)
		require.NoError(t, err, in)
		assertRGB(t, want, got, 1e-9)
	}

	c, err := color.Parse("hsl(120, 100%, 25%)")
	require.NoError(t, err)
	_, isHSL := c.(color.HSL)
	assert.True(t, isHSL)
	assertRGB(t, color.NewRGB(0, 127.5, 0), c.RGB(), 1e-9)

	tr, err := color.ParseRGB("transparent")
	require.NoError(t, err)
	assert.Equal(t, 0.0, tr.Opacity)
	assert.True(t, math.IsNaN(tr.R))
}

// 2) TestParse_Errors rejects malformed specifiers.
func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"", "#12", "#12345", "rgb(1,2)", "notacolor", "hsl(1, 2, 3)"} {
		_, err := color.Parse(in)
		assert.ErrorIs(t, err, color.ErrParse, in)
	}
	assert.Panics(t, func() { color.MustParse("nope") })
}

// 3) TestFormat covers hex and functional notation with clamping.
func TestFormat(t *testing.T) {
	c := color.NewRGB(70, 130, 180)
	assert.Equal(t, "#4682b4", c.FormatHex())
	assert.Equal(t, "rgb(70, 130, 180)", c.String())
	assert.Equal(t, "rgba(70, 130, 180, 0.5)", c.WithOpacity(0.5).String())
	assert.Equal(t, "#4682b480", c.WithOpacity(0.5).FormatHex8())
	assert.Equal(t, "rgb(255, 0, 0)", color.NewRGB(300.2, -4, 0.4).FormatRGB())
	assert.Equal(t, "hsl(120, 50%, 25%)", color.NewHSL(480, 0.5, 0.25).FormatHSL())
	assert.Equal(t, "hsla(0, 0%, 100%, 0.5)", color.HSL{H: math.NaN(), S: math.NaN(), L: 1, Opacity: 0.5}.String())
}

// 4) TestBrighterDarker are inverse for RGB and HSL and additive for Lab.
func TestBrighterDarker(t *testing.T) {
	c := color.NewRGB(100, 50, 20)
	assertRGB(t, c, c.Brighter(1).Darker(1), 1e-9)
	assertRGB(t, color.NewRGB(70, 35, 14), c.Darker(1), 1e-9)

	h := color.NewHSL(30, 0.5, 0.4)
	assert.InDelta(t, 0.4/0.7, h.Brighter(1).L, 1e-12)

	l := color.NewLab(50, 10, 10)
	assert.Equal(t, 68.0, l.Brighter(1).L)
	assert.Equal(t, 32.0, l.Darker(1).L)
	assert.Equal(t, 14.0, color.NewHCL(1, 2, 50).Darker(2).L)

	cu := color.NewCubehelix(300, 0.5, 0.5)
	assert.InDelta(t, 0.35, cu.Darker(1).L, 1e-12)
}

// 5) TestDisplayable and Clamp agree on the sRGB gamut.
func TestDisplayable(t *testing.T) {
	assert.True(t, color.NewRGB(0, 255, 128).Displayable())
	assert.False(t, color.NewRGB(0, 256, 128).Displayable())
	assert.True(t, color.NewRGB(0, 256, 128).Clamp().Displayable())
	assert.False(t, color.NewLab(50, 200, 0).Displayable())
	assert.True(t, color.NewHSL(math.NaN(), math.NaN(), 1).Displayable())
	assert.False(t, color.NewHSL(10, 1.5, 0.5).Displayable())
	assert.Equal(t, color.NewHSL(350, 1, 0), color.NewHSL(-10, 1.5, -1).Clamp())
}

// 6) TestRGBToHSL_Achromatic marks undefined hue and saturation as NaN.
func TestRGBToHSL_Achromatic(t *testing.T) {
	g := color.ToHSL(color.NewRGB(128, 128, 128))
	assert.True(t, math.IsNaN(g.H))
	assert.Equal(t, 0.0, g.S)
	w := color.ToHSL(color.NewRGB(255, 255, 255))
	assert.True(t, math.IsNaN(w.S))

	r := color.ToHSL(color.NewRGB(255, 0, 0))
	assert.Equal(t, color.NewHSL(0, 1, 0.5), r)
	assertRGB(t, color.NewRGB(255, 0, 0), r.RGB(), 1e-9)
}

// 7) TestLab_KnownValues pins reference conversions.
func TestLab_KnownValues(t *testing.T) {
	lab := color.ToLab(color.NewRGB(70, 130, 180))
	assert.InDelta(t, 51.98625, lab.L, 1e-4)
	assert.InDelta(t, -8.36279, lab.A, 1e-4)
	assert.InDelta(t, -32.83270, lab.B, 1e-4)

	white := color.ToLab(color.NewRGB(255, 255, 255))
	assert.InDelta(t, 100, white.L, 1e-4)
	assert.Equal(t, 0.0, white.A)
	assert.Equal(t, 0.0, white.B)

	hcl := color.ToHCL(color.NewRGB(255, 255, 255))
	assert.True(t, math.IsNaN(hcl.H))
	assert.True(t, math.IsNaN(hcl.C))
	gray := color.ToHCL(color.Gray(50))
	assert.Equal(t, 0.0, gray.C)

	lch := color.LCh(50, 30, 90)
	assert.Equal(t, color.NewHCL(90, 30, 50), lch)
	back := color.ToLab(lch)
	assert.InDelta(t, 0, back.A, 1e-9)
	assert.InDelta(t, 30, back.B, 1e-9)
}

// 8) TestRoundTrip_Random converts 10,000 random colors through every space.
func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		c := color.NewRGB(float64(rng.Intn(256)), float64(rng.Intn(256)), float64(rng.Intn(256)))
		assertRGB(t, c, color.ToLab(c).RGB(), 0.5)
		assertRGB(t, c, color.ToHCL(c).RGB(), 0.5)
		assertRGB(t, c, color.ToHSL(c).RGB(), 1e-9)
		assertRGB(t, c, color.ToCubehelix(c).RGB(), 1e-6)
		if t.Failed() {
			t.Fatalf("round trip failed for %v", c)
		}
	}
}

// 9) TestImageColor checks the image/color.Color bridge.
func TestImageColor(t *testing.T) {
	var c stdcolor.Color = color.NewRGBA(255, 0, 0, 0.5)
	r, g, b, a := c.RGBA()
	assert.Equal(t, uint32(0x8080), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0x8080), a)

	got := color.From(stdcolor.NRGBA{R: 10, G: 20, B: 30, A: 255})
	assert.Equal(t, color.NewRGB(10, 20, 30), got)
	assert.Equal(t, color.NewRGB(1, 2, 3), color.From(color.NewRGB(1, 2, 3)))
}

// 10) TestPolarSpaces_FormatAndClamp formats and clamps through sRGB.
func TestPolarSpaces_FormatAndClamp(t *testing.T) {
	steel := color.NewRGB(70, 130, 180)
	lab, hcl, ch := color.ToLab(steel), color.ToHCL(steel), color.ToCubehelix(steel)
	assert.Equal(t, "#4682b4", lab.FormatHex())
	assert.Equal(t, "#4682b4", hcl.FormatHex())
	assert.Equal(t, "#4682b4", ch.FormatHex())
	assert.Equal(t, "rgb(70, 130, 180)", lab.FormatRGB())
	assert.Equal(t, "rgb(70, 130, 180)", hcl.FormatRGB())
	assert.Equal(t, "rgb(70, 130, 180)", ch.FormatRGB())
	assert.Equal(t, "#4682b480", lab.WithOpacity(0.5).FormatHex8())
	assert.Equal(t, color.ToHSL(steel).FormatHSL(), hcl.FormatHSL())

	hot := color.NewLab(140, 0, 0)
	assert.False(t, hot.Displayable())
	assert.True(t, hot.Clamp().Displayable())
	assertRGB(t, color.NewRGB(255, 255, 255), hot.Clamp().RGB().Clamp(), 1e-9)
	assert.True(t, color.NewHCL(0, 200, 50).Clamp().Displayable())
	assert.True(t, color.NewCubehelix(300, 3, 0.5).Clamp().Displayable())
}
