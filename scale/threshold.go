package scale

import (
	"cmp"
	"fmt"
	"sync"

	"github.com/katalvlaran/lvscale/numeric"
)

// Threshold maps x to rng[i] where i counts the boundaries ≤ x. The domain
// holds exactly len(range)−1 strictly ascending boundaries.
type Threshold[D cmp.Ordered, R comparable] struct {
	mu      sync.RWMutex
	domain  []D
	rng     []R
	unknown R
}

// Extent is an input interval [Lo, Hi). A missing bound means the interval
// is unbounded on that side.
type Extent[D any] struct {
	Lo, Hi       D
	HasLo, HasHi bool
}

// NewThreshold returns a threshold scale. Returns ErrThresholdLength or
// ErrNotAscending.
//
//	t, _ := scale.NewThreshold([]float64{0, 1}, []string{"neg", "unit", "big"})
//	t.Map(0.5) // "unit"
func NewThreshold[D cmp.Ordered, R comparable](domain []D, rng []R, opts ...Option) (*Threshold[D, R], error) {
	o := gatherOptions(opts)
	t := &Threshold[D, R]{unknown: unknownAs(o, defaultUnknown[R]())}
	if err := t.reset(domain, rng); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Threshold[D, R]) reset(domain []D, rng []R) error {
	if len(rng) == 0 {
		return ErrEmptyRange
	}
	if len(domain) != len(rng)-1 {
		return fmt.Errorf("domain %d, range %d: %w", len(domain), len(rng), ErrThresholdLength)
	}
	for i := 0; i < len(domain); i++ {
		if isNaN(domain[i]) {
			return fmt.Errorf("domain[%d]: %w", i, ErrBadDomain)
		}
		if i > 0 && !(domain[i-1] < domain[i]) {
			return fmt.Errorf("domain[%d]: %w", i, ErrNotAscending)
		}
	}
	t.domain = append([]D(nil), domain...)
	t.rng = append([]R(nil), rng...)
	return nil
}

// Map returns the range value of x's bucket. A NaN input yields the
// unknown value.
func (t *Threshold[D, R]) Map(x D) R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if isNaN(x) {
		return t.unknown
	}
	return t.rng[numeric.BisectRight(t.domain, x)]
}

// InvertExtent returns the input interval mapped to y; ok is false when y
// is not in the range. The first bucket has no lower bound and the last
// has no upper bound.
func (t *Threshold[D, R]) InvertExtent(y R) (Extent[D], bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	i := indexOf(t.rng, y)
	if i < 0 {
		return Extent[D]{}, false
	}
	var e Extent[D]
	if i > 0 {
		e.Lo, e.HasLo = t.domain[i-1], true
	}
	if i < len(t.domain) {
		e.Hi, e.HasHi = t.domain[i], true
	}
	return e, true
}

func (t *Threshold[D, R]) Domain() []D {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]D(nil), t.domain...)
}

func (t *Threshold[D, R]) Range() []R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]R(nil), t.rng...)
}

// Reset replaces boundaries and range together.
func (t *Threshold[D, R]) Reset(domain []D, rng []R) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.reset(domain, rng)
}

func (t *Threshold[D, R]) Unknown() R {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.unknown
}

func (t *Threshold[D, R]) SetUnknown(v R) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.unknown = v
}

func (t *Threshold[D, R]) Copy() *Threshold[D, R] {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return &Threshold[D, R]{
		domain:  append([]D(nil), t.domain...),
		rng:     append([]R(nil), t.rng...),
		unknown: t.unknown,
	}
}

// isNaN reports whether x is a floating-point NaN, the only ordered value
// unequal to itself.
func isNaN[T cmp.Ordered](x T) bool { return x != x }
