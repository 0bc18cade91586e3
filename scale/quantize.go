package scale

import (
	"fmt"
	"math"
	"sync"

	"github.com/katalvlaran/lvscale/numeric"
)

// Quantize splits a continuous [lo, hi] domain into len(range) equal-width
// buckets, each mapped to one range value.
type Quantize[R comparable] struct {
	mu         sync.RWMutex
	x0, x1     float64
	rng        []R
	thresholds []float64
	unknown    R
}

// NewQuantize returns a quantize scale. rng must not be empty.
//
//	q, _ := scale.NewQuantize(0, 1, []string{"a", "b", "c"})
//	q.Map(0.5) // "b"
func NewQuantize[R comparable](lo, hi float64, rng []R, opts ...Option) (*Quantize[R], error) {
	o := gatherOptions(opts)
	q := &Quantize[R]{unknown: unknownAs(o, defaultUnknown[R]())}
	if err := q.reset(lo, hi, rng); err != nil {
		return nil, err
	}
	if o.nice > 0 {
		q.nice(o.nice)
	}
	return q, nil
}

func (q *Quantize[R]) reset(lo, hi float64, rng []R) error {
	if len(rng) == 0 {
		return ErrEmptyRange
	}
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return fmt.Errorf("[%v, %v]: %w", lo, hi, ErrBadDomain)
	}
	q.x0, q.x1 = lo, hi
	q.rng = append([]R(nil), rng...)
	q.rescale()
	return nil
}

// rescale places the n−1 inner boundaries at (i+1)/n of the span, computed
// from the endpoints directly so no error accumulates.
func (q *Quantize[R]) rescale() {
	n := len(q.rng) - 1
	q.thresholds = make([]float64, n)
	for i := 0; i < n; i++ {
		q.thresholds[i] = (float64(i+1)*q.x1 - float64(i-n)*q.x0) / float64(n+1)
	}
}

// Map returns the range value of x's bucket; inputs outside the domain
// fall into the first or last bucket. NaN yields the unknown value.
func (q *Quantize[R]) Map(x float64) R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if math.IsNaN(x) {
		return q.unknown
	}
	return q.rng[numeric.BisectRight(q.thresholds, x)]
}

func (q *Quantize[R]) MapAny(v any) R {
	x, ok := numeric.ToNumber(v)
	if !ok {
		return q.Unknown()
	}
	return q.Map(x)
}

// InvertExtent returns the [lo, hi) input interval mapped to y. ok is false
// when y is not in the range. Duplicated range values report their first
// bucket.
func (q *Quantize[R]) InvertExtent(y R) (lo, hi float64, ok bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	i := indexOf(q.rng, y)
	n := len(q.thresholds)
	switch {
	case i < 0:
		return math.NaN(), math.NaN(), false
	case n == 0:
		return q.x0, q.x1, true
	case i < 1:
		return q.x0, q.thresholds[0], true
	case i >= n:
		return q.thresholds[n-1], q.x1, true
	}
	return q.thresholds[i-1], q.thresholds[i], true
}

func indexOf[R comparable](xs []R, y R) int {
	for i, x := range xs {
		if x == y {
			return i
		}
	}
	return -1
}

// Domain returns [lo, hi].
func (q *Quantize[R]) Domain() []float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return []float64{q.x0, q.x1}
}

func (q *Quantize[R]) SetDomain(lo, hi float64) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.reset(lo, hi, q.rng)
}

func (q *Quantize[R]) Range() []R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]R(nil), q.rng...)
}

func (q *Quantize[R]) SetRange(rng []R) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.reset(q.x0, q.x1, rng)
}

// Thresholds returns the inner bucket boundaries.
func (q *Quantize[R]) Thresholds() []float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return append([]float64(nil), q.thresholds...)
}

func (q *Quantize[R]) Unknown() R {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.unknown
}

func (q *Quantize[R]) SetUnknown(v R) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.unknown = v
}

func (q *Quantize[R]) Ticks(count int) []float64 {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return Linear{}.Ticks([]float64{q.x0, q.x1}, count)
}

func (q *Quantize[R]) TickFormat(count int) func(float64) string {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return Linear{}.TickFormat([]float64{q.x0, q.x1}, count)
}

// Nice rounds the domain endpoints for count ticks.
func (q *Quantize[R]) Nice(count int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.nice(count)
}

func (q *Quantize[R]) nice(count int) {
	if count <= 0 {
		count = DefaultTickCount
	}
	d := niceLinear([]float64{q.x0, q.x1}, count)
	q.x0, q.x1 = d[0], d[1]
	q.rescale()
}

func (q *Quantize[R]) Copy() *Quantize[R] {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return &Quantize[R]{
		x0:         q.x0,
		x1:         q.x1,
		rng:        append([]R(nil), q.rng...),
		thresholds: append([]float64(nil), q.thresholds...),
		unknown:    q.unknown,
	}
}
