package scale_test

import (
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestLinear_MapInvert pins the basic scenario in both directions.
func TestLinear_MapInvert(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 100}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.25, s.Map(25))
	assert.Equal(t, 25.0, s.Invert(0.25))
	assert.Equal(t, 1.5, s.Map(150), "unclamped scales extrapolate")
	assert.Equal(t, 0.5, s.MapAny("50"))
}

// 2) TestRoundTrip checks Invert(Map(x)) ≈ x for every transform.
func TestRoundTrip(t *testing.T) {
	type ctor func(d, r []float64, o ...scale.Option) (*scale.Continuous[float64], error)
	cases := []struct {
		name   string
		build  ctor
		domain []float64
		opts   []scale.Option
	}{
		{"linear", scale.NewLinear, []float64{-20, 80}, nil},
		{"log", scale.NewLog, []float64{1, 1e6}, nil},
		{"log-negative", scale.NewLog, []float64{-1e3, -1}, nil},
		{"log2", scale.NewLog, []float64{2, 4096}, []scale.Option{scale.WithBase(2)}},
		{"pow", scale.NewPow, []float64{0, 10}, []scale.Option{scale.WithExponent(2)}},
		{"pow-cubic", scale.NewPow, []float64{-5, 5}, []scale.Option{scale.WithExponent(3)}},
		{"sqrt", scale.NewSqrt, []float64{0, 1e4}, nil},
		{"symlog", scale.NewSymlog, []float64{-1e3, 1e3}, []scale.Option{scale.WithConstant(10)}},
	}
	rng := rand.New(rand.NewSource(7))
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.build(tc.domain, []float64{0, 500}, tc.opts...)
			require.NoError(t, err)
			lo, hi := tc.domain[0], tc.domain[1]
			for i := 0; i < 1000; i++ {
				x := lo + rng.Float64()*(hi-lo)
				y := s.Map(x)
				got := s.Invert(y)
				// Rounding in range space grows by the slope of the inverse,
				// which is steep where pow flattens out around zero.
				slope := math.Abs(s.Invert(y+1e-6)-got) / 1e-6
				tol := 1e-9*math.Max(1, math.Abs(x)) + 1e-12*500*slope
				assert.InDelta(t, x, got, tol, "x=%v", x)
			}
		})
	}
}

// 3) TestClamp saturates both directions.
func TestClamp(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 10}, []float64{0, 100}, scale.WithClamp(true))
	require.NoError(t, err)
	assert.True(t, s.Clamp())
	assert.Equal(t, 0.0, s.Map(-5))
	assert.Equal(t, 100.0, s.Map(15))
	assert.Equal(t, 10.0, s.Invert(150))

	s.SetClamp(false)
	assert.Equal(t, 150.0, s.Map(15))
}

// 4) TestPiecewise brackets each stop pair, in either domain order.
func TestPiecewise(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 10, 100}, []float64{0, 50, 100})
	require.NoError(t, err)
	assert.Equal(t, 25.0, s.Map(5))
	assert.Equal(t, 75.0, s.Map(55))
	assert.Equal(t, 55.0, s.Invert(75))

	r, err := scale.NewLinear([]float64{100, 10, 0}, []float64{100, 50, 0})
	require.NoError(t, err)
	assert.Equal(t, 25.0, r.Map(5))
	assert.Equal(t, 75.0, r.Map(55))
}

// 5) TestConfigErrors surfaces shape problems immediately.
func TestConfigErrors(t *testing.T) {
	_, err := scale.NewLinear([]float64{0, 1, 2}, []float64{0, 1})
	assert.ErrorIs(t, err, scale.ErrDomainRangeMismatch)
	_, err = scale.NewLinear([]float64{0}, []float64{0})
	assert.ErrorIs(t, err, scale.ErrDomainTooShort)
	_, err = scale.NewLinear([]float64{math.NaN(), 1}, []float64{0, 1})
	assert.ErrorIs(t, err, scale.ErrBadDomain)

	s, err := scale.NewLinear([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	assert.ErrorIs(t, s.SetRange([]float64{0, 1, 2}), scale.ErrDomainRangeMismatch)
	require.NoError(t, s.Reset([]float64{0, 1, 2}, []float64{0, 10, 0}))
	assert.Equal(t, 5.0, s.Map(1.5))

	assert.Panics(t, func() { scale.WithBase(1) })
	assert.Panics(t, func() { scale.WithConstant(0) })
	assert.Panics(t, func() { scale.WithExponent(0) })
	assert.Panics(t, func() { scale.WithAlign(2) })
	assert.Panics(t, func() { scale.WithPaddingInner(-0.1) })
}

// 6) TestNice rounds the outer stops only.
func TestNice(t *testing.T) {
	s, err := scale.NewLinear([]float64{0.201479, 0.996679}, []float64{0, 1})
	require.NoError(t, err)
	s.Nice(10)
	assert.Equal(t, []float64{0.2, 1}, s.Domain())

	p, err := scale.NewLinear([]float64{0.201479, 0.5, 0.996679}, []float64{0, 1, 2}, scale.WithNice(10))
	require.NoError(t, err)
	assert.Equal(t, []float64{0.2, 0.5, 1}, p.Domain())

	r, err := scale.NewLinear([]float64{0.996679, 0.201479}, []float64{0, 1})
	require.NoError(t, err)
	r.Nice(0)
	assert.Equal(t, []float64{1, 0.2}, r.Domain())
}

// 7) TestLinearTicks uses the decimal planner.
func TestLinearTicks(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 97}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 10, 20, 30, 40, 50, 60, 70, 80, 90}, s.Ticks(10))
	f := s.TickFormat(10)
	assert.Equal(t, "90", f(90))

	w, err := scale.NewLinear([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "0.5", w.TickFormat(10)(0.5))
}

// 8) TestLog covers ticks, nice and labels.
func TestLog(t *testing.T) {
	s, err := scale.NewLog([]float64{1, 100}, []float64{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, s.Map(10), 1e-12)

	tk := s.Ticks(10)
	assert.Len(t, tk, 19)
	assert.Equal(t, 1.0, tk[0])
	assert.Equal(t, 30.0, tk[11])
	assert.Equal(t, 100.0, tk[18])

	f := s.TickFormat(10)
	assert.Equal(t, "1", f(1))
	assert.Equal(t, "", f(7))
	assert.Equal(t, "20", f(20))
	assert.Equal(t, "100", f(100))

	wide, err := scale.NewLog([]float64{1, 1e10}, []float64{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 100, 1e4, 1e6, 1e8, 1e10}, wide.Ticks(5))

	neg, err := scale.NewLog([]float64{-100, -1}, []float64{0, 1})
	require.NoError(t, err)
	nt := neg.Ticks(10)
	require.Len(t, nt, 19)
	assert.Equal(t, -100.0, nt[0])
	assert.Equal(t, -1.0, nt[18])
	assert.InDelta(t, 0.5, neg.Map(-10), 1e-12)

	n, err := scale.NewLog([]float64{1.5, 850}, []float64{0, 1}, scale.WithNice(10))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1000}, n.Domain())

	assert.True(t, math.IsNaN(s.Map(-1)), "outside the log domain")
}

// 9) TestPowSqrtSymlog pins the remaining transforms.
func TestPowSqrtSymlog(t *testing.T) {
	p, err := scale.NewPow([]float64{0, 10}, []float64{0, 100}, scale.WithExponent(2))
	require.NoError(t, err)
	assert.Equal(t, 25.0, p.Map(5))
	assert.Equal(t, -25.0, p.Map(-5))
	assert.Equal(t, "pow", p.Transform().Name())

	q, err := scale.NewSqrt([]float64{0, 100}, []float64{0, 10})
	require.NoError(t, err)
	assert.Equal(t, 5.0, q.Map(25))
	assert.Equal(t, "sqrt", q.Transform().Name())

	y, err := scale.NewSymlog([]float64{-100, 100}, []float64{-1, 1})
	require.NoError(t, err)
	assert.Equal(t, 0.0, y.Map(0))
	assert.Equal(t, 1.0, y.Map(100))
	assert.InDelta(t, -y.Map(50), y.Map(-50), 1e-12)
	assert.Equal(t, []float64{-100, -50, 0, 50, 100}, y.Ticks(4))
}

// 10) TestRoundAndUnknown covers rounding and the unknown channel.
func TestRoundAndUnknown(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 3}, []float64{0, 10}, scale.WithRound(true))
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Map(1))

	d, err := scale.NewLinear([]float64{0, 1}, []float64{0, 1})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(d.Map(math.NaN())))

	u, err := scale.NewLinear([]float64{0, 1}, []float64{0, 1}, scale.WithUnknown(-1.0))
	require.NoError(t, err)
	assert.Equal(t, -1.0, u.Map(math.NaN()))
	assert.Equal(t, -1.0, u.MapAny("abc"))
	assert.Equal(t, -1.0, u.MapAny(nil))
	u.SetUnknown(-2)
	assert.Equal(t, -2.0, u.Unknown())

	z, err := scale.NewLinear([]float64{0, 1}, []float64{0, 1}, scale.WithUnknown(0))
	require.NoError(t, err)
	assert.Equal(t, 0.0, z.Map(math.NaN()), "untyped int unknowns are coerced")
	assert.Panics(t, func() {
		_, _ = scale.NewLinear([]float64{0, 1}, []float64{0, 1}, scale.WithUnknown("n/a"))
	})

	b, err := scale.Make("band", []any{"a"}, []any{0, 10}, scale.WithUnknown(-1))
	require.NoError(t, err)
	assert.Equal(t, -1.0, b.Map("zzz"))
	_, err = scale.Make("band", []any{"a"}, []any{0, 10}, scale.WithUnknown("n/a"))
	assert.ErrorIs(t, err, scale.ErrBadOption)
}

// 11) TestColorRange blends colors and refuses to invert them.
func TestColorRange(t *testing.T) {
	red, blue := color.NewRGB(255, 0, 0), color.NewRGB(0, 0, 255)
	s, err := scale.NewContinuous[color.Color](scale.Linear{}, []float64{0, 1},
		[]color.Color{red, blue}, interpolate.ColorIn(interpolate.SpaceRGB))
	require.NoError(t, err)
	got := s.Map(0.5).RGB()
	assert.InDelta(t, 127.5, got.R, 1e-9)
	assert.InDelta(t, 127.5, got.B, 1e-9)
	assert.True(t, math.IsNaN(s.Invert(0.5)))

	s.Interpolate(interpolate.ColorIn(interpolate.SpaceHSL))
	assert.Equal(t, "rgb(255, 0, 255)", s.Map(0.5).RGB().String())
}

// 12) TestCopyAndAliasing keeps scales independent of callers and copies.
func TestCopyAndAliasing(t *testing.T) {
	d := []float64{0, 100}
	s, err := scale.NewLinear(d, []float64{0, 1})
	require.NoError(t, err)
	d[1] = 1000
	assert.Equal(t, 0.25, s.Map(25), "domain was copied on set")

	got := s.Domain()
	got[0] = -1
	assert.Equal(t, []float64{0, 100}, s.Domain(), "getter returns a copy")

	c := s.Copy()
	require.NoError(t, c.SetDomain([]float64{0, 200}))
	assert.Equal(t, 0.25, s.Map(25))
	assert.Equal(t, 0.125, c.Map(25))
}

// 13) TestConcurrentUse maps while another goroutine reconfigures.
func TestConcurrentUse(t *testing.T) {
	s, err := scale.NewLinear([]float64{0, 100}, []float64{0, 1})
	require.NoError(t, err)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				y := s.Map(50)
				assert.True(t, y == 0.5 || y == 0.25, "got %v", y)
			}
		}()
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 100; i++ {
			_ = s.SetDomain([]float64{0, 200})
			_ = s.SetDomain([]float64{0, 100})
		}
	}()
	wg.Wait()
}

// 14) TestIdentity mirrors domain and range.
func TestIdentity(t *testing.T) {
	s, err := scale.NewIdentity([]float64{1, 9})
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.Map(3))
	assert.Equal(t, 3.0, s.Invert(3))
	assert.Equal(t, s.Domain(), s.Range())
	s.Nice(10)
	assert.Equal(t, []float64{1, 9}, s.Domain())
	assert.Equal(t, []float64{2, 4, 6, 8}, s.Ticks(4))
	assert.True(t, math.IsNaN(s.MapAny("x")))
}

// 15) TestLog_FractionalBase plans exponent-space ticks with a fractional
// decade count.
func TestLog_FractionalBase(t *testing.T) {
	e, err := scale.NewLog([]float64{1, 20}, []float64{0, 1}, scale.WithBase(math.E))
	require.NoError(t, err)
	tk := e.Ticks(10)
	require.Len(t, tk, 3)
	assert.InDelta(t, 1, tk[0], 1e-12)
	assert.InDelta(t, math.E, tk[1], 1e-12)
	assert.InDelta(t, math.E*math.E, tk[2], 1e-12)

	b, err := scale.NewLog([]float64{1, 2}, []float64{0, 1}, scale.WithBase(2.5))
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, b.Ticks(10))

	wide, err := scale.NewLog([]float64{1, 1000}, []float64{0, 1}, scale.WithBase(2.5))
	require.NoError(t, err)
	wt := wide.Ticks(10)
	require.Len(t, wt, 8)
	assert.InDelta(t, math.Pow(2.5, 7), wt[7], 1e-9)
}
