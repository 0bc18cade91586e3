package scale

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
)

// numberFactory blends numeric ranges, rounding when asked to.
func numberFactory(round bool) interpolate.Factory[float64] {
	if round {
		return interpolate.Round
	}
	return interpolate.Number
}

// NewLinear returns a linear scale over numeric domain and range.
//
//	s, _ := scale.NewLinear([]float64{0, 100}, []float64{0, 1})
//	s.Map(25)       // 0.25
//	s.Invert(0.25)  // 25
func NewLinear(domain, rng []float64, opts ...Option) (*Continuous[float64], error) {
	o := gatherOptions(opts)
	return NewContinuous(Linear{}, domain, rng, numberFactory(o.round), opts...)
}

// NewPow returns a power scale; WithExponent sets the exponent.
func NewPow(domain, rng []float64, opts ...Option) (*Continuous[float64], error) {
	o := gatherOptions(opts)
	return NewContinuous(Pow{Exponent: o.exponent}, domain, rng, numberFactory(o.round), opts...)
}

// NewSqrt returns a power scale with exponent 0.5.
func NewSqrt(domain, rng []float64, opts ...Option) (*Continuous[float64], error) {
	o := gatherOptions(opts)
	return NewContinuous(Pow{Exponent: DefaultSqrtExponent}, domain, rng, numberFactory(o.round), opts...)
}

// NewLog returns a logarithmic scale; WithBase sets the tick base. The
// domain must be strictly positive or strictly negative.
func NewLog(domain, rng []float64, opts ...Option) (*Continuous[float64], error) {
	o := gatherOptions(opts)
	return NewContinuous(Log{Base: o.base}, domain, rng, numberFactory(o.round), opts...)
}

// NewSymlog returns a bi-symmetric log scale; WithConstant sets the width
// of the linear region around zero.
func NewSymlog(domain, rng []float64, opts ...Option) (*Continuous[float64], error) {
	o := gatherOptions(opts)
	return NewContinuous(Symlog{Constant: o.constant}, domain, rng, numberFactory(o.round), opts...)
}

// Identity is the scale whose range is its domain. It exists for the tick
// and nice machinery.
type Identity struct {
	mu      sync.RWMutex
	domain  []float64
	unknown float64
}

// NewIdentity returns an identity scale over domain (at least two values).
func NewIdentity(domain []float64, opts ...Option) (*Identity, error) {
	o := gatherOptions(opts)
	s := &Identity{unknown: unknownAs(o, math.NaN())}
	if err := s.SetDomain(domain); err != nil {
		return nil, err
	}
	if o.nice > 0 {
		s.Nice(o.nice)
	}
	return s, nil
}

// Map returns x, or the unknown value when x is NaN.
func (s *Identity) Map(x float64) float64 {
	if math.IsNaN(x) {
		s.mu.RLock()
		defer s.mu.RUnlock()
		return s.unknown
	}
	return x
}

// MapAny coerces v and returns it.
func (s *Identity) MapAny(v any) float64 {
	x, ok := numeric.ToNumber(v)
	if !ok {
		x = math.NaN()
	}
	return s.Map(x)
}

// Invert is Map.
func (s *Identity) Invert(y float64) float64 { return s.Map(y) }

func (s *Identity) Domain() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]float64(nil), s.domain...)
}

// Range equals Domain.
func (s *Identity) Range() []float64 { return s.Domain() }

func (s *Identity) SetDomain(domain []float64) error {
	if err := checkPiecewise(len(domain), len(domain)); err != nil {
		return err
	}
	if err := checkDomain(domain); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domain = append([]float64(nil), domain...)
	return nil
}

// SetRange equals SetDomain.
func (s *Identity) SetRange(rng []float64) error { return s.SetDomain(rng) }

func (s *Identity) Ticks(count int) []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Linear{}.Ticks(s.domain, count)
}

func (s *Identity) TickFormat(count int) func(float64) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Linear{}.TickFormat(s.domain, count)
}

func (s *Identity) Nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.domain = niceLinear(s.domain, count)
}

func (s *Identity) Copy() *Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return &Identity{domain: append([]float64(nil), s.domain...), unknown: s.unknown}
}
