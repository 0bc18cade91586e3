package scale

import (
	"math"
	"time"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
	"github.com/katalvlaran/lvscale/ticks"
)

// Time is a linear scale over instants. Instants are handled as epoch
// milliseconds; ticks, nice and labels follow the calendar of the scale's
// location (time.Local by default, UTC for NewUTC).
type Time[R any] struct {
	c   *Continuous[R]
	loc *time.Location
}

// NewTimeWith builds a time scale with an arbitrary range type.
func NewTimeWith[R any](domain []time.Time, rng []R, interp interpolate.Factory[R], opts ...Option) (*Time[R], error) {
	o := gatherOptions(opts)
	// nice is calendar based here, so keep the numeric one out.
	inner := append(append([]Option(nil), opts...), WithNice(0))
	c, err := NewContinuous(Linear{}, timesToNumbers(domain), rng, interp, inner...)
	if err != nil {
		return nil, err
	}
	s := &Time[R]{c: c, loc: o.location}
	if o.nice > 0 {
		s.Nice(o.nice)
	}
	return s, nil
}

// NewTime returns a time scale with a numeric range in local time (or the
// WithLocation zone).
func NewTime(domain []time.Time, rng []float64, opts ...Option) (*Time[float64], error) {
	o := gatherOptions(opts)
	return NewTimeWith(domain, rng, numberFactory(o.round), opts...)
}

// NewUTC is NewTime with calendar arithmetic in UTC.
func NewUTC(domain []time.Time, rng []float64, opts ...Option) (*Time[float64], error) {
	return NewTime(domain, rng, append(append([]Option(nil), opts...), WithLocation(time.UTC))...)
}

func timesToNumbers(ts []time.Time) []float64 {
	out := make([]float64, len(ts))
	for i, t := range ts {
		out[i] = numeric.TimeToNumber(t)
	}
	return out
}

func (s *Time[R]) numbersToTimes(xs []float64) []time.Time {
	out := make([]time.Time, len(xs))
	for i, x := range xs {
		out[i] = numeric.NumberToTime(x, s.loc)
	}
	return out
}

// Location returns the zone used for calendar arithmetic.
func (s *Time[R]) Location() *time.Location { return s.loc }

// Map scales t. The zero time yields the unknown value.
func (s *Time[R]) Map(t time.Time) R {
	if t.IsZero() {
		return s.c.Unknown()
	}
	return s.c.Map(numeric.TimeToNumber(t))
}

// MapAny coerces v with numeric.ToTime and scales it.
func (s *Time[R]) MapAny(v any) R {
	t, ok := numeric.ToTime(v)
	if !ok {
		return s.c.Unknown()
	}
	return s.Map(t)
}

// Invert returns the instant mapping to y, or the zero time when y is not
// invertible.
func (s *Time[R]) Invert(y float64) time.Time {
	x := s.c.Invert(y)
	if math.IsNaN(x) {
		return time.Time{}
	}
	return numeric.NumberToTime(x, s.loc)
}

func (s *Time[R]) Domain() []time.Time { return s.numbersToTimes(s.c.Domain()) }

func (s *Time[R]) SetDomain(domain []time.Time) error {
	return s.c.SetDomain(timesToNumbers(domain))
}

func (s *Time[R]) Range() []R { return s.c.Range() }
func (s *Time[R]) SetRange(rng []R) error { return s.c.SetRange(rng) }
func (s *Time[R]) Clamp() bool { return s.c.Clamp() }
func (s *Time[R]) SetClamp(on bool) { s.c.SetClamp(on) }
func (s *Time[R]) Unknown() R { return s.c.Unknown() }
func (s *Time[R]) SetUnknown(v R) { s.c.SetUnknown(v) }

// Reset replaces domain and range together.
func (s *Time[R]) Reset(domain []time.Time, rng []R) error {
	return s.c.Reset(timesToNumbers(domain), rng)
}

func (s *Time[R]) ends() (time.Time, time.Time) {
	d := s.Domain()
	return d[0], d[len(d)-1]
}

// Ticks returns calendar-aligned ticks, about count of them.
func (s *Time[R]) Ticks(count int) []time.Time {
	start, stop := s.ends()
	return ticks.TimeTicks(start, stop, count)
}

// TicksEvery returns every boundary of iv within the domain.
func (s *Time[R]) TicksEvery(iv ticks.Interval) []time.Time {
	start, stop := s.ends()
	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}
	out := iv.Range(start, stop.Add(time.Millisecond))
	if reverse {
		for a, b := 0, len(out)-1; a < b; a, b = a+1, b-1 {
			out[a], out[b] = out[b], out[a]
		}
	}
	return out
}

// TickFormat returns the multi-resolution calendar label formatter.
func (s *Time[R]) TickFormat() func(time.Time) string {
	loc := s.loc
	return func(t time.Time) string { return ticks.TimeFormat(t.In(loc)) }
}

// Nice widens the domain to the calendar interval chosen for count ticks
// (DefaultTickCount when count ≤ 0).
func (s *Time[R]) Nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	start, stop := s.ends()
	lo, hi := start, stop
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	iv, ok := ticks.TimeTickInterval(lo, hi, count)
	if !ok {
		return
	}
	s.NiceEvery(iv)
}

// NiceEvery widens the outer domain stops to boundaries of iv.
func (s *Time[R]) NiceEvery(iv ticks.Interval) {
	d := s.Domain()
	i0, i1 := 0, len(d)-1
	if d[i1].Before(d[i0]) {
		i0, i1 = i1, i0
	}
	d[i0] = iv.Floor(d[i0])
	d[i1] = iv.Ceil(d[i1])
	_ = s.SetDomain(d)
}

// Copy returns an independent scale.
func (s *Time[R]) Copy() *Time[R] { return &Time[R]{c: s.c.Copy(), loc: s.loc} }
