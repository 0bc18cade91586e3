package scale

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
	"github.com/katalvlaran/lvscale/ticks"
)

// transformer is the shared body of sequential and diverging scales: a
// transformed domain normalised onto [0, 1] and fed to an interpolator.
type transformer[R any] struct {
	mu        sync.RWMutex
	tr        Transform
	domain    []float64
	interp    interpolate.Interpolator[R]
	factory   interpolate.Factory[R]
	clamp     bool
	unknown   R
	diverging bool

	t0, t1, t2 float64
	k10, k21   float64
	s          float64
}

func newTransformer[R any](tr Transform, domain []float64, interp interpolate.Interpolator[R], diverging bool, o Options) (*transformer[R], error) {
	t := &transformer[R]{
		tr:        tr,
		interp:    interp,
		clamp:     o.clamp,
		unknown:   unknownAs(o, defaultUnknown[R]()),
		diverging: diverging,
	}
	if err := t.setDomain(domain); err != nil {
		return nil, err
	}
	if o.nice > 0 {
		t.nice(o.nice)
	}
	return t, nil
}

func (t *transformer[R]) stops() int {
	if t.diverging {
		return 3
	}
	return 2
}

func (t *transformer[R]) setDomain(domain []float64) error {
	if len(domain) != t.stops() {
		return fmt.Errorf("want %d, got %d: %w", t.stops(), len(domain), ErrDomainLength)
	}
	if err := checkDomain(domain); err != nil {
		return err
	}
	t.domain = append([]float64(nil), domain...)
	t.rescale()
	return nil
}

func (t *transformer[R]) rescale() {
	if da, ok := t.tr.(domainAware); ok {
		t.tr = da.forDomain(t.domain)
	}
	if !t.diverging {
		t.t0, t.t1 = t.tr.Forward(t.domain[0]), t.tr.Forward(t.domain[1])
		t.k10 = 0
		if t.t0 != t.t1 {
			t.k10 = 1 / (t.t1 - t.t0)
		}
		return
	}
	t.t0, t.t1, t.t2 = t.tr.Forward(t.domain[0]), t.tr.Forward(t.domain[1]), t.tr.Forward(t.domain[2])
	t.k10, t.k21 = 0, 0
	if t.t0 != t.t1 {
		t.k10 = 0.5 / (t.t1 - t.t0)
	}
	if t.t1 != t.t2 {
		t.k21 = 0.5 / (t.t2 - t.t1)
	}
	t.s = 1
	if t.t1 < t.t0 {
		t.s = -1
	}
}

// Map normalises x onto [0, 1] and samples the interpolator there.
func (t *transformer[R]) Map(x float64) R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if math.IsNaN(x) {
		return t.unknown
	}
	tx := t.tr.Forward(x)
	var u float64
	if t.diverging {
		k := t.k21
		if t.s*tx < t.s*t.t1 {
			k = t.k10
		}
		u = 0.5 + (tx-t.t1)*k
	} else {
		if t.k10 == 0 {
			return t.interp(0.5)
		}
		u = (tx - t.t0) * t.k10
	}
	if t.clamp {
		u = math.Max(0, math.Min(1, u))
	}
	return t.interp(u)
}

// MapAny coerces v with numeric.ToNumber and scales it.
func (t *transformer[R]) MapAny(v any) R {
	x, ok := numeric.ToNumber(v)
	if !ok {
		return t.Unknown()
	}
	return t.Map(x)
}

func (t *transformer[R]) Domain() []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]float64(nil), t.domain...)
}

func (t *transformer[R]) SetDomain(domain []float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.setDomain(domain)
}

// Interpolator returns the interpolator fed with the normalised input.
func (t *transformer[R]) Interpolator() interpolate.Interpolator[R] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.interp
}

// SetInterpolator replaces the interpolator.
func (t *transformer[R]) SetInterpolator(f interpolate.Interpolator[R]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interp = f
}

// Range samples the interpolator at the domain stops (0, 1 or 0, ½, 1).
func (t *transformer[R]) Range() []R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.diverging {
		return []R{t.interp(0), t.interp(0.5), t.interp(1)}
	}
	return []R{t.interp(0), t.interp(1)}
}

// SetRange rebuilds the interpolator as a piecewise blend of rng using the
// factory from SetFactory (interpolate.Dynamic when none was given).
func (t *transformer[R]) SetRange(rng []R) error {
	if len(rng) < 2 {
		return fmt.Errorf("%d values: %w", len(rng), ErrEmptyRange)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	f := t.factory
	if f == nil {
		f = dynamicFactory[R](DefaultSpace)
	}
	t.interp = interpolate.Piecewise(f, append([]R(nil), rng...))
	return nil
}

// SetFactory sets the factory SetRange blends with.
func (t *transformer[R]) SetFactory(f interpolate.Factory[R]) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.factory = f
}

func (t *transformer[R]) Clamp() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.clamp
}

func (t *transformer[R]) SetClamp(on bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.clamp = on
}

func (t *transformer[R]) Unknown() R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.unknown
}

func (t *transformer[R]) SetUnknown(v R) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unknown = v
}

// Transform returns the active transform.
func (t *transformer[R]) Transform() Transform {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tr
}

func (t *transformer[R]) Ticks(count int) []float64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tr.Ticks(t.domain, count)
}

func (t *transformer[R]) TickFormat(count int) func(float64) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tr.TickFormat(t.domain, count)
}

// Nice rounds the outer domain stops; a diverging midpoint is kept.
func (t *transformer[R]) Nice(count int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nice(count)
}

func (t *transformer[R]) nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	t.domain = t.tr.Nice(t.domain, count)
	t.rescale()
}

func (t *transformer[R]) clone() *transformer[R] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := &transformer[R]{
		tr:        t.tr,
		domain:    append([]float64(nil), t.domain...),
		interp:    t.interp,
		factory:   t.factory,
		clamp:     t.clamp,
		unknown:   t.unknown,
		diverging: t.diverging,
	}
	out.rescale()
	return out
}

// dynamicFactory adapts interpolate.DynamicIn to R when R can carry
// dynamic values (any, or an interpolate.Value); otherwise it steps.
func dynamicFactory[R any](space interpolate.Space) interpolate.Factory[R] {
	dyn := interpolate.AnyIn(space)
	return func(a, b R) interpolate.Interpolator[R] {
		g := dyn(a, b)
		return func(u float64) R {
			if v, ok := g(u).(R); ok {
				return v
			}
			if u < 1 {
				return a
			}
			return b
		}
	}
}

// Sequential maps a two-stop domain onto an interpolator over [0, 1].
type Sequential[R any] struct {
	*transformer[R]
}

// NewSequential returns a linear sequential scale.
//
//	s, _ := scale.NewSequential([]float64{0, 100}, interpolate.Number(0, 1))
func NewSequential[R any](domain []float64, interp interpolate.Interpolator[R], opts ...Option) (*Sequential[R], error) {
	return NewSequentialWith(Linear{}, domain, interp, opts...)
}

// NewSequentialWith returns a sequential scale over tr (Log, Pow, Symlog).
func NewSequentialWith[R any](tr Transform, domain []float64, interp interpolate.Interpolator[R], opts ...Option) (*Sequential[R], error) {
	t, err := newTransformer(tr, domain, interp, false, gatherOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Sequential[R]{t}, nil
}

// Copy returns an independent scale.
func (s *Sequential[R]) Copy() *Sequential[R] { return &Sequential[R]{s.clone()} }

// Diverging maps a three-stop domain [lo, mid, hi] onto [0, ½, 1]. Each
// half is normalised on its own, so an off-centre midpoint still lands on
// the middle of the interpolator.
type Diverging[R any] struct {
	*transformer[R]
}

// NewDiverging returns a linear diverging scale.
func NewDiverging[R any](domain []float64, interp interpolate.Interpolator[R], opts ...Option) (*Diverging[R], error) {
	return NewDivergingWith(Linear{}, domain, interp, opts...)
}

// NewDivergingWith returns a diverging scale over tr.
func NewDivergingWith[R any](tr Transform, domain []float64, interp interpolate.Interpolator[R], opts ...Option) (*Diverging[R], error) {
	t, err := newTransformer(tr, domain, interp, true, gatherOptions(opts))
	if err != nil {
		return nil, err
	}
	return &Diverging[R]{t}, nil
}

// Copy returns an independent scale.
func (s *Diverging[R]) Copy() *Diverging[R] { return &Diverging[R]{s.clone()} }

// SequentialQuantile maps x to the interpolator at its rank within a
// sample: the i-th of n sorted sample values lands at i/(n−1).
type SequentialQuantile[R any] struct {
	mu      sync.RWMutex
	domain  []float64
	interp  interpolate.Interpolator[R]
	unknown R
}

// NewSequentialQuantile sorts the finite values of sample into the domain.
func NewSequentialQuantile[R any](sample []float64, interp interpolate.Interpolator[R], opts ...Option) *SequentialQuantile[R] {
	o := gatherOptions(opts)
	return &SequentialQuantile[R]{
		domain:  ticks.SortedFinite(sample),
		interp:  interp,
		unknown: unknownAs(o, defaultUnknown[R]()),
	}
}

// Map returns the interpolator at x's rank. A one-value sample maps
// everything to the middle; an empty one yields the unknown value.
func (s *SequentialQuantile[R]) Map(x float64) R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.domain)
	if math.IsNaN(x) || n == 0 {
		return s.unknown
	}
	if n == 1 {
		return s.interp(0.5)
	}
	i := numeric.BisectRight(s.domain[1:], x)
	return s.interp(float64(i) / float64(n-1))
}

func (s *SequentialQuantile[R]) MapAny(v any) R {
	x, ok := numeric.ToNumber(v)
	if !ok {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.unknown
	}
	return s.Map(x)
}

// Domain returns the sorted sample.
func (s *SequentialQuantile[R]) Domain() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]float64(nil), s.domain...)
}

func (s *SequentialQuantile[R]) SetDomain(sample []float64) {
	sorted := ticks.SortedFinite(sample)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domain = sorted
}

// Range samples the interpolator at each sample rank.
func (s *SequentialQuantile[R]) Range() []R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := len(s.domain)
	out := make([]R, n)
	for i := range out {
		u := 0.5
		if n > 1 {
			u = float64(i) / float64(n-1)
		}
		out[i] = s.interp(u)
	}
	return out
}

func (s *SequentialQuantile[R]) Interpolator() interpolate.Interpolator[R] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interp
}

func (s *SequentialQuantile[R]) SetInterpolator(f interpolate.Interpolator[R]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interp = f
}

func (s *SequentialQuantile[R]) Unknown() R {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unknown
}

func (s *SequentialQuantile[R]) SetUnknown(v R) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unknown = v
}

// Quantiles returns the n+1 sample quantiles at 0, 1/n, ..., 1.
func (s *SequentialQuantile[R]) Quantiles(n int) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n+1)
	for i := range out {
		q, err := ticks.Quantile(s.domain, float64(i)/float64(n))
		if err != nil {
			q = math.NaN()
		}
		out[i] = q
	}
	return out
}

func (s *SequentialQuantile[R]) Copy() *SequentialQuantile[R] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &SequentialQuantile[R]{
		domain:  append([]float64(nil), s.domain...),
		interp:  s.interp,
		unknown: s.unknown,
	}
}
