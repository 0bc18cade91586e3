package scale

import (
	"fmt"
	"math"
	"sync"
)

// Band lays n discrete keys out as equal bands across a numeric range:
//
//	|<-po·step->|<-bw->|<-pi·step->|<-bw->| ... |<-bw->|<-po·step->|
//
// where step = span / (n − pi + 2·po) and bw = step·(1 − pi). Leftover
// space is split before and after the bands according to align. In round
// mode start, step and bandwidth are truncated to integers; the truncation
// error accumulates after the last band instead of being spread out.
type Band[K comparable] struct {
	mu           sync.RWMutex
	ord          *Ordinal[K, float64]
	r0, r1       float64
	step         float64
	bandwidth    float64
	round        bool
	paddingInner float64
	paddingOuter float64
	align        float64
}

// NewBand returns a band scale over [r0, r1] (which may be reversed).
// Returns ErrInvalidRange when the span is zero or not finite.
func NewBand[K comparable](domain []K, r0, r1 float64, opts ...Option) (*Band[K], error) {
	o := gatherOptions(opts)
	return newBand(domain, r0, r1, o, o.paddingInner)
}

func newBand[K comparable](domain []K, r0, r1 float64, o Options, inner float64) (*Band[K], error) {
	if err := checkSpan(r0, r1); err != nil {
		return nil, err
	}
	b := &Band[K]{
		ord:          NewOrdinal[K, float64](domain, nil, WithUnknown(unknownAs(o, math.NaN()))),
		r0:           r0,
		r1:           r1,
		round:        o.round,
		paddingInner: inner,
		paddingOuter: o.paddingOuter,
		align:        o.align,
	}
	b.rescale()
	return b, nil
}

func checkSpan(r0, r1 float64) error {
	span := r1 - r0
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return fmt.Errorf("[%v, %v]: %w", r0, r1, ErrInvalidRange)
	}
	return nil
}

func (b *Band[K]) rescale() {
	n := float64(len(b.ord.Domain()))
	reverse := b.r1 < b.r0
	start, stop := b.r0, b.r1
	if reverse {
		start, stop = stop, start
	}
	step := (stop - start) / math.Max(1, n-b.paddingInner+b.paddingOuter*2)
	start += (stop - start - step*(n-b.paddingInner)) * b.align
	bandwidth := step * (1 - b.paddingInner)
	if b.round {
		step = math.Floor(step)
		start = math.Floor(start)
		bandwidth = math.Floor(bandwidth)
	}
	b.step, b.bandwidth = step, bandwidth

	values := make([]float64, int(n))
	for i := range values {
		values[i] = start + step*float64(i)
	}
	if reverse {
		for l, r := 0, len(values)-1; l < r; l, r = l+1, r-1 {
			values[l], values[r] = values[r], values[l]
		}
	}
	b.ord.SetRange(values)
}

// Map returns the start offset of k's band, or the unknown value (NaN by
// default) for keys outside the domain.
func (b *Band[K]) Map(k K) float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ord.Map(k)
}

func (b *Band[K]) Domain() []K {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ord.Domain()
}

func (b *Band[K]) SetDomain(domain []K) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ord.SetDomain(domain)
	b.rescale()
}

// Range returns the configured range endpoints.
func (b *Band[K]) Range() (r0, r1 float64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.r0, b.r1
}

// SetRange replaces the range endpoints.
func (b *Band[K]) SetRange(r0, r1 float64) error {
	if err := checkSpan(r0, r1); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.r0, b.r1 = r0, r1
	b.rescale()
	return nil
}

// RangeRound is SetRange with rounding switched on.
func (b *Band[K]) RangeRound(r0, r1 float64) error {
	if err := checkSpan(r0, r1); err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.r0, b.r1, b.round = r0, r1, true
	b.rescale()
	return nil
}

// Bandwidth returns the width of each band.
func (b *Band[K]) Bandwidth() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.bandwidth
}

// Step returns the distance between the starts of adjacent bands.
func (b *Band[K]) Step() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.step
}

func (b *Band[K]) Round() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.round
}

func (b *Band[K]) SetRound(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.round = on
	b.rescale()
}

func (b *Band[K]) PaddingInner() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.paddingInner
}

// SetPaddingInner panics on negative or NaN input, like WithPaddingInner.
func (b *Band[K]) SetPaddingInner(p float64) {
	mustFraction("SetPaddingInner", p, math.Inf(1))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paddingInner = math.Min(1, p)
	b.rescale()
}

func (b *Band[K]) PaddingOuter() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.paddingOuter
}

func (b *Band[K]) SetPaddingOuter(p float64) {
	mustFraction("SetPaddingOuter", p, math.Inf(1))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paddingOuter = p
	b.rescale()
}

// SetPadding sets inner and outer padding together.
func (b *Band[K]) SetPadding(p float64) {
	mustFraction("SetPadding", p, math.Inf(1))
	b.mu.Lock()
	defer b.mu.Unlock()
	b.paddingInner, b.paddingOuter = math.Min(1, p), p
	b.rescale()
}

func (b *Band[K]) Align() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.align
}

func (b *Band[K]) SetAlign(a float64) {
	mustFraction("SetAlign", a, 1)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.align = a
	b.rescale()
}

func (b *Band[K]) Unknown() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ord.Unknown()
}

func (b *Band[K]) SetUnknown(v float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ord.SetUnknown(v)
}

func (b *Band[K]) Copy() *Band[K] {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return &Band[K]{
		ord:          b.ord.Copy(),
		r0:           b.r0,
		r1:           b.r1,
		step:         b.step,
		bandwidth:    b.bandwidth,
		round:        b.round,
		paddingInner: b.paddingInner,
		paddingOuter: b.paddingOuter,
		align:        b.align,
	}
}

// Point is a band scale with zero-width bands: keys become evenly spaced
// positions. Its padding is the outer padding in multiples of the step.
type Point[K comparable] struct {
	b *Band[K]
}

// NewPoint returns a point scale over [r0, r1].
func NewPoint[K comparable](domain []K, r0, r1 float64, opts ...Option) (*Point[K], error) {
	b, err := newBand(domain, r0, r1, gatherOptions(opts), 1)
	if err != nil {
		return nil, err
	}
	return &Point[K]{b: b}, nil
}

// Map returns k's position.
func (p *Point[K]) Map(k K) float64 { return p.b.Map(k) }
func (p *Point[K]) Domain() []K { return p.b.Domain() }
func (p *Point[K]) SetDomain(domain []K) { p.b.SetDomain(domain) }
func (p *Point[K]) Range() (r0, r1 float64) { return p.b.Range() }
func (p *Point[K]) SetRange(r0, r1 float64) error { return p.b.SetRange(r0, r1) }
func (p *Point[K]) RangeRound(r0, r1 float64) error { return p.b.RangeRound(r0, r1) }

// Bandwidth is always zero.
func (p *Point[K]) Bandwidth() float64 { return p.b.Bandwidth() }

// Step returns the distance between adjacent points.
func (p *Point[K]) Step() float64 { return p.b.Step() }
func (p *Point[K]) Padding() float64 { return p.b.PaddingOuter() }
func (p *Point[K]) SetPadding(v float64) { p.b.SetPaddingOuter(v) }
func (p *Point[K]) Align() float64 { return p.b.Align() }
func (p *Point[K]) SetAlign(a float64) { p.b.SetAlign(a) }
func (p *Point[K]) Round() bool { return p.b.Round() }
func (p *Point[K]) SetRound(on bool) { p.b.SetRound(on) }
func (p *Point[K]) Unknown() float64 { return p.b.Unknown() }
func (p *Point[K]) SetUnknown(v float64) { p.b.SetUnknown(v) }
func (p *Point[K]) Copy() *Point[K] { return &Point[K]{b: p.b.Copy()} }
