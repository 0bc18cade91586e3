package scale

import (
	"math"
	"sync"

	"github.com/katalvlaran/lvscale/numeric"
	"github.com/katalvlaran/lvscale/ticks"
)

// Quantile partitions a sample into len(range) groups of (nearly) equal
// population and maps x to the group it falls in.
type Quantile[R comparable] struct {
	mu         sync.RWMutex
	domain     []float64 // sorted finite sample
	rng        []R
	thresholds []float64
	unknown    R
}

// NewQuantile returns a quantile scale. The sample is copied, its
// non-finite values dropped and the rest sorted. rng must not be empty.
func NewQuantile[R comparable](sample []float64, rng []R, opts ...Option) (*Quantile[R], error) {
	o := gatherOptions(opts)
	if len(rng) == 0 {
		return nil, ErrEmptyRange
	}
	q := &Quantile[R]{
		domain:  ticks.SortedFinite(sample),
		rng:     append([]R(nil), rng...),
		unknown: unknownAs(o, defaultUnknown[R]()),
	}
	q.rescale()
	return q, nil
}

// rescale computes the len(range)−1 R-7 quantiles at i/n. Repeated sample
// values give repeated thresholds, which collapses the buckets between them.
func (q *Quantile[R]) rescale() {
	n := len(q.rng)
	q.thresholds = make([]float64, n-1)
	for i := 1; i < n; i++ {
		q.thresholds[i-1] = ticks.QuantileSorted(q.domain, float64(i)/float64(n))
	}
}

// Map returns the range value for x. NaN and an empty sample yield the
// unknown value.
func (q *Quantile[R]) Map(x float64) R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if math.IsNaN(x) || len(q.domain) == 0 {
		return q.unknown
	}
	return q.rng[numeric.BisectRight(q.thresholds, x)]
}

func (q *Quantile[R]) MapAny(v any) R {
	x, ok := numeric.ToNumber(v)
	if !ok {
		return q.Unknown()
	}
	return q.Map(x)
}

// InvertExtent returns the input interval mapped to y, bounded by the
// sample extremes at either end. ok is false when y is not in the range or
// the sample is empty.
func (q *Quantile[R]) InvertExtent(y R) (lo, hi float64, ok bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	i := indexOf(q.rng, y)
	if i < 0 || len(q.domain) == 0 {
		return math.NaN(), math.NaN(), false
	}
	lo, hi = q.domain[0], q.domain[len(q.domain)-1]
	if i > 0 {
		lo = q.thresholds[i-1]
	}
	if i < len(q.thresholds) {
		hi = q.thresholds[i]
	}
	return lo, hi, true
}

// Domain returns the sorted sample.
func (q *Quantile[R]) Domain() []float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]float64(nil), q.domain...)
}

func (q *Quantile[R]) SetDomain(sample []float64) {
	sorted := ticks.SortedFinite(sample)
	q.mu.Lock()
	defer q.mu.Unlock()
	q.domain = sorted
	q.rescale()
}

func (q *Quantile[R]) Range() []R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]R(nil), q.rng...)
}

func (q *Quantile[R]) SetRange(rng []R) error {
	if len(rng) == 0 {
		return ErrEmptyRange
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.rng = append([]R(nil), rng...)
	q.rescale()
	return nil
}

// Quantiles returns the computed thresholds.
func (q *Quantile[R]) Quantiles() []float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]float64(nil), q.thresholds...)
}

func (q *Quantile[R]) Unknown() R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.unknown
}

func (q *Quantile[R]) SetUnknown(v R) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.unknown = v
}

func (q *Quantile[R]) Copy() *Quantile[R] {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return &Quantile[R]{
		domain:     append([]float64(nil), q.domain...),
		rng:        append([]R(nil), q.rng...),
		thresholds: append([]float64(nil), q.thresholds...),
		unknown:    q.unknown,
	}
}
