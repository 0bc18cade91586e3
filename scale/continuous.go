package scale

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
)

// Continuous maps a numeric domain onto a range of R through a Transform.
// Domain and range have equal length (at least two); with more than two
// stops the scale is piecewise and each segment is blended independently.
//
// Concurrency: Map, Invert and every getter take a read lock; setters take
// the write lock and rebuild the cached mapping eagerly, so a scale may be
// shared between goroutines.
type Continuous[R any] struct {
	mu      sync.RWMutex
	tr      Transform
	domain  []float64
	rng     []R
	interp  interpolate.Factory[R]
	clamp   bool
	unknown R

	output func(float64) R
	input  func(float64) float64 // nil when the range is not numeric
}

// NewContinuous builds a continuous scale. Domain and range are copied.
// Returns ErrDomainTooShort, ErrDomainRangeMismatch or ErrBadDomain.
func NewContinuous[R any](tr Transform, domain []float64, rng []R, interp interpolate.Factory[R], opts ...Option) (*Continuous[R], error) {
	o := gatherOptions(opts)
	c := &Continuous[R]{
		tr:      tr,
		interp:  interp,
		clamp:   o.clamp,
		unknown: unknownAs(o, defaultUnknown[R]()),
	}
	if err := c.reset(domain, rng); err != nil {
		return nil, err
	}
	if o.nice > 0 {
		c.nice(o.nice)
	}
	return c, nil
}

func checkPiecewise(nd, nr int) error {
	if nd < 2 {
		return fmt.Errorf("%d values: %w", nd, ErrDomainTooShort)
	}
	if nd != nr {
		return fmt.Errorf("domain %d, range %d: %w", nd, nr, ErrDomainRangeMismatch)
	}
	return nil
}

func checkDomain(domain []float64) error {
	for i, d := range domain {
		if math.IsNaN(d) {
			return fmt.Errorf("domain[%d] is NaN: %w", i, ErrBadDomain)
		}
	}
	return nil
}

func (c *Continuous[R]) reset(domain []float64, rng []R) error {
	if err := checkPiecewise(len(domain), len(rng)); err != nil {
		return err
	}
	if err := checkDomain(domain); err != nil {
		return err
	}
	c.domain = append([]float64(nil), domain...)
	c.rng = append([]R(nil), rng...)
	c.rescale()
	return nil
}

// domainAware transforms adapt themselves to the sign of the domain.
type domainAware interface {
	forDomain(domain []float64) Transform
}

func (c *Continuous[R]) rescale() {
	if da, ok := c.tr.(domainAware); ok {
		c.tr = da.forDomain(c.domain)
	}
	td := make([]float64, len(c.domain))
	for i, d := range c.domain {
		td[i] = c.tr.Forward(d)
	}
	c.output = piecewise(td, c.rng, c.interp)
	c.input = nil
	if nums, ok := rangeNumbers(c.rng); ok {
		c.input = piecewise(nums, td, interpolate.Number)
	}
}

func rangeNumbers[R any](rng []R) ([]float64, bool) {
	out := make([]float64, len(rng))
	for i, r := range rng {
		f, ok := numeric.ToNumber(any(r))
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

// piecewise picks the two-stop fast path or the bisecting polylinear map.
func piecewise[R any](domain []float64, rng []R, interp interpolate.Factory[R]) func(float64) R {
	if len(domain) == 2 {
		return bimap(domain, rng, interp)
	}
	return polymap(domain, rng, interp)
}

func bimap[R any](d []float64, r []R, interp interpolate.Factory[R]) func(float64) R {
	norm, f := numeric.Normalize(d[0], d[1]), interp(r[0], r[1])
	if d[1] < d[0] {
		norm, f = numeric.Normalize(d[1], d[0]), interp(r[1], r[0])
	}
	return func(x float64) R { return f(norm(x)) }
}

func polymap[R any](domain []float64, rng []R, interp interpolate.Factory[R]) func(float64) R {
	j := min(len(domain), len(rng)) - 1
	d := append([]float64(nil), domain[:j+1]...)
	r := append([]R(nil), rng[:j+1]...)
	if d[j] < d[0] {
		for a, b := 0, j; a < b; a, b = a+1, b-1 {
			d[a], d[b] = d[b], d[a]
			r[a], r[b] = r[b], r[a]
		}
	}
	norms := make([]func(float64) float64, j)
	fs := make([]interpolate.Interpolator[R], j)
	for i := 0; i < j; i++ {
		norms[i] = numeric.Normalize(d[i], d[i+1])
		fs[i] = interp(r[i], r[i+1])
	}
	inner := d[1:j]
	return func(x float64) R {
		i := numeric.BisectRight(inner, x)
		return fs[i](norms[i](x))
	}
}

// Map scales x. NaN yields the unknown value.
func (c *Continuous[R]) Map(x float64) R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if math.IsNaN(x) {
		return c.unknown
	}
	if c.clamp {
		x = numeric.Clamp(x, c.domain[0], c.domain[len(c.domain)-1])
	}
	return c.output(c.tr.Forward(x))
}

// MapAny coerces v with numeric.ToNumber and scales it; values that do not
// coerce yield the unknown value.
func (c *Continuous[R]) MapAny(v any) R {
	x, ok := numeric.ToNumber(v)
	if !ok {
		return c.Unknown()
	}
	return c.Map(x)
}

// Invert returns the domain value mapping to y. It is NaN when y is NaN
// or the range is not numeric.
func (c *Continuous[R]) Invert(y float64) float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.input == nil || math.IsNaN(y) {
		return math.NaN()
	}
	x := c.tr.Inverse(c.input(y))
	if c.clamp {
		x = numeric.Clamp(x, c.domain[0], c.domain[len(c.domain)-1])
	}
	return x
}

// Domain returns a copy of the domain.
func (c *Continuous[R]) Domain() []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]float64(nil), c.domain...)
}

// SetDomain replaces the domain, which must match the range length.
func (c *Continuous[R]) SetDomain(domain []float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset(domain, c.rng)
}

// Range returns a copy of the range.
func (c *Continuous[R]) Range() []R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]R(nil), c.rng...)
}

// SetRange replaces the range, which must match the domain length.
func (c *Continuous[R]) SetRange(rng []R) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset(c.domain, rng)
}

// Reset replaces domain and range together, for changing the stop count.
func (c *Continuous[R]) Reset(domain []float64, rng []R) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reset(domain, rng)
}

// Interpolate replaces the range interpolator factory.
func (c *Continuous[R]) Interpolate(f interpolate.Factory[R]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.interp = f
	c.rescale()
}

// Clamp reports whether clamping is enabled.
func (c *Continuous[R]) Clamp() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.clamp
}

// SetClamp toggles clamping.
func (c *Continuous[R]) SetClamp(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clamp = on
}

func (c *Continuous[R]) Unknown() R {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.unknown
}

func (c *Continuous[R]) SetUnknown(v R) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unknown = v
}

// Transform returns the active transform.
func (c *Continuous[R]) Transform() Transform {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tr
}

// Ticks returns about count representative domain values, following the
// transform's tick rule.
func (c *Continuous[R]) Ticks(count int) []float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tr.Ticks(c.domain, count)
}

// TickFormat returns a label formatter suited to Ticks(count).
func (c *Continuous[R]) TickFormat(count int) func(float64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tr.TickFormat(c.domain, count)
}

// Nice extends the outer domain stops to round values for count ticks
// (DefaultTickCount when count ≤ 0). Interior stops are untouched.
func (c *Continuous[R]) Nice(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nice(count)
}

func (c *Continuous[R]) nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	c.domain = c.tr.Nice(c.domain, count)
	c.rescale()
}

// Copy returns an independent scale with the same configuration.
func (c *Continuous[R]) Copy() *Continuous[R] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := &Continuous[R]{
		tr:      c.tr,
		domain:  append([]float64(nil), c.domain...),
		rng:     append([]R(nil), c.rng...),
		interp:  c.interp,
		clamp:   c.clamp,
		unknown: c.unknown,
	}
	out.rescale()
	return out
}
