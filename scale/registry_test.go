package scale_test

import (
	"testing"

	"github.com/katalvlaran/lvscale/scale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 1) TestMake_Linear builds and inverts through the dynamic view.
func TestMake_Linear(t *testing.T) {
	s, err := scale.Make("linear", []any{0, 100}, []any{0, 1})
	require.NoError(t, err)
	assert.Equal(t, "linear", s.Kind())
	assert.Equal(t, 0.25, s.Map(25))
	assert.Equal(t, []any{0.0, 100.0}, s.Domain())

	inv, ok := s.(scale.Inverter)
	require.True(t, ok)
	assert.Equal(t, 25.0, inv.Invert(0.25))
	assert.Nil(t, inv.Invert("x"))

	tk, ok := s.(scale.Ticker)
	require.True(t, ok)
	assert.Len(t, tk.Ticks(10), 11)
	assert.Equal(t, "50", tk.TickFormat(10)(50))

	d, err := scale.Make("linear", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.5, d.Map(0.5), "defaults to the unit square")
}

// 2) TestMake_Errors wraps configuration failures with the kind.
func TestMake_Errors(t *testing.T) {
	_, err := scale.Make("nope", nil, nil)
	assert.ErrorIs(t, err, scale.ErrUnknownKind)

	_, err = scale.Make("linear", []any{0, 1, 2}, []any{0, 1})
	assert.ErrorIs(t, err, scale.ErrDomainRangeMismatch)
	assert.Contains(t, err.Error(), "linear")

	_, err = scale.Make("linear", []any{"a", 1}, []any{0, 1})
	assert.ErrorIs(t, err, scale.ErrBadDomain)

	_, err = scale.Make("band", []any{"a"}, []any{0, 1, 2})
	assert.ErrorIs(t, err, scale.ErrInvalidRange)
}

// 3) TestMake_ColorRange blends color strings into CSS rgb text.
func TestMake_ColorRange(t *testing.T) {
	s, err := scale.Make("linear", []any{0, 1}, []any{"red", "blue"})
	require.NoError(t, err)
	assert.Equal(t, "rgb(128, 0, 128)", s.Map(0.5))
	assert.Nil(t, s.(scale.Inverter).Invert(0.5))
}

// 4) TestMake_Discretizing covers quantize, quantile and threshold.
func TestMake_Discretizing(t *testing.T) {
	q, err := scale.Make("quantize", []any{0, 1}, []any{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, "b", q.Map(0.5))
	lo, hi, ok := q.(scale.ExtentInverter).InvertExtent("c")
	require.True(t, ok)
	assert.InDelta(t, 2.0/3, lo, 1e-12)
	assert.Equal(t, 1.0, hi)

	_, err = scale.Make("quantize", []any{0, 1, 2}, []any{"a"})
	assert.ErrorIs(t, err, scale.ErrDomainLength)

	qt, err := scale.Make("quantile", []any{1, 2, 3, 4}, []any{"lo", "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi", qt.Map(3))

	th, err := scale.Make("threshold", []any{0}, []any{"neg", "pos"})
	require.NoError(t, err)
	assert.Equal(t, "neg", th.Map(-1))
	lo, hi, ok = th.(scale.ExtentInverter).InvertExtent("neg")
	require.True(t, ok)
	assert.Nil(t, lo)
	assert.Equal(t, 0.0, hi)
}

// 5) TestMake_Discrete covers ordinal, band and point.
func TestMake_Discrete(t *testing.T) {
	o, err := scale.Make("ordinal", []any{"a"}, []any{"red", "blue"})
	require.NoError(t, err)
	assert.Equal(t, "blue", o.Map("b"))
	assert.Equal(t, []any{"a", "b"}, o.Domain())

	b, err := scale.Make("band", []any{"a", "b"}, []any{0, 100})
	require.NoError(t, err)
	assert.Equal(t, 50.0, b.(scale.BandScale).Bandwidth())
	assert.Equal(t, 50.0, b.Map("b"))
	assert.Nil(t, b.Map("zzz"))
	assert.Equal(t, []any{0.0, 100.0}, b.Range())

	p, err := scale.Make("point", []any{"a", "b", "c"}, []any{0, 100})
	require.NoError(t, err)
	assert.Equal(t, 0.0, p.(scale.BandScale).Bandwidth())
	assert.Equal(t, 50.0, p.Map("b"))
}

// 6) TestMake_Sequential accepts stops or a ready interpolator.
func TestMake_Sequential(t *testing.T) {
	s, err := scale.Make("sequential", []any{0, 10}, []any{"white", "black"})
	require.NoError(t, err)
	assert.Equal(t, "black", s.Map(10))
	assert.Equal(t, "rgb(255, 255, 255)", s.Map(0))
	_, ok := s.(scale.InterpolatorScale)
	assert.True(t, ok)

	f, err := scale.Make("sequential", []any{0, 10}, []any{func(t float64) float64 { return 2 * t }})
	require.NoError(t, err)
	assert.Equal(t, 1.0, f.Map(5))

	_, err = scale.Make("sequential", nil, []any{42})
	assert.ErrorIs(t, err, scale.ErrBadRange)

	d, err := scale.Make("diverging", nil, []any{0, 10, 20})
	require.NoError(t, err)
	assert.Equal(t, 15.0, d.Map(0.75))

	lg, err := scale.Make("sequential-log", []any{1, 100}, []any{0, 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.5, lg.Map(10), 1e-12)
}

// 7) TestMake_Time parses string instants.
func TestMake_Time(t *testing.T) {
	s, err := scale.Make("utc", []any{"2000-01-01", "2000-01-02"}, []any{0, 960})
	require.NoError(t, err)
	assert.Equal(t, 480.0, s.Map("2000-01-01T12:00:00Z"))

	tk, ok := s.(scale.Ticker)
	require.True(t, ok)
	assert.Equal(t, "2000", tk.TickFormat(0)(s.Domain()[0]))
}

// 8) TestKindsAndRegister lists built-ins and accepts custom kinds.
func TestKindsAndRegister(t *testing.T) {
	kinds := scale.Kinds()
	assert.GreaterOrEqual(t, len(kinds), 25)
	assert.Contains(t, kinds, "diverging-symlog")
	assert.Contains(t, kinds, "sequential-quantile")

	scale.Register("test-reversed", func(domain, rng []any, opts ...scale.Option) (scale.Scale, error) {
		return scale.Make("linear", domain, []any{1, 0}, opts...)
	})
	s, err := scale.Make("test-reversed", []any{0, 10}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.75, s.Map(2.5))
}

// 9) TestMake_UnhashableData maps malformed discrete data to unknown.
func TestMake_UnhashableData(t *testing.T) {
	o, err := scale.Make("ordinal", []any{"a"}, []any{"red", "blue"})
	require.NoError(t, err)
	assert.NotPanics(t, func() { assert.Nil(t, o.Map([]any{1})) })

	for _, kind := range []string{"band", "point"} {
		s, err := scale.Make(kind, []any{"a", "b"}, []any{0, 100})
		require.NoError(t, err)
		assert.NotPanics(t, func() { assert.Nil(t, s.Map(map[string]any{"x": 1})) }, kind)
		assert.Equal(t, []any{"a", "b"}, s.Domain(), kind)
	}
}
