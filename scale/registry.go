package scale

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
)

// Scale is the dynamically typed view of any scale built by Make. Inputs
// and outputs are plain Go values; extra abilities are exposed through the
// capability interfaces below and discovered with a type assertion.
type Scale interface {
	Kind() string
	Map(v any) any
	Domain() []any
	Range() []any
	Copy() Scale
}

// Inverter is implemented by continuous scales with a numeric range.
type Inverter interface {
	Invert(y any) any
}

// Ticker is implemented by scales with a tick planner.
type Ticker interface {
	Ticks(count int) []any
	TickFormat(count int) func(any) string
}

// Nicer is implemented by scales whose domain can be rounded outward.
type Nicer interface {
	Nice(count int)
}

// BandScale is implemented by band and point scales.
type BandScale interface {
	Bandwidth() float64
	Step() float64
}

// ExtentInverter is implemented by discretizing scales.
type ExtentInverter interface {
	InvertExtent(y any) (lo, hi any, ok bool)
}

// InterpolatorScale is implemented by sequential and diverging scales.
type InterpolatorScale interface {
	Interpolator() interpolate.Interpolator[any]
}

// Constructor builds a scale from loosely typed domain and range values.
type Constructor func(domain, rng []any, opts ...Option) (Scale, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Constructor{}
)

// Register adds or replaces the constructor for kind.
func Register(kind string, c Constructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = c
}

// Kinds lists the registered kind names in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]string, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Make resolves kind and builds the scale. An empty domain or range takes
// the kind's default ([0, 1] for continuous scales). Configuration errors
// are returned immediately, wrapped with the kind name.
//
//	s, _ := scale.Make("linear", []any{0, 100}, []any{0, 1})
//	s.Map(25) // 0.25
func Make(kind string, domain, rng []any, opts ...Option) (s Scale, err error) {
	registryMu.RLock()
	c, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownKind)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%s: %v: %w", kind, r, ErrBadOption)
		}
	}()
	s, err = c(domain, rng, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", kind, err)
	}
	return s, nil
}

func init() {
	for kind, tr := range map[string]func(Options) Transform{
		"linear": func(Options) Transform { return Linear{} },
		"log":    func(o Options) Transform { return Log{Base: o.base} },
		"pow":    func(o Options) Transform { return Pow{Exponent: o.exponent} },
		"sqrt":   func(Options) Transform { return Pow{Exponent: DefaultSqrtExponent} },
		"symlog": func(o Options) Transform { return Symlog{Constant: o.constant} },
	} {
		Register(kind, continuousConstructor(kind, tr))
		seq, div := "sequential-"+kind, "diverging-"+kind
		if kind == "linear" {
			seq, div = "sequential", "diverging"
		}
		Register(seq, sequentialConstructor(seq, tr, false))
		Register(div, sequentialConstructor(div, tr, true))
	}
	Register("identity", makeIdentity)
	Register("time", timeConstructor("time", false))
	Register("utc", timeConstructor("utc", true))
	Register("sequential-quantile", makeSequentialQuantile)
	Register("quantize", makeQuantize)
	Register("quantile", makeQuantile)
	Register("threshold", makeThreshold)
	Register("ordinal", makeOrdinal)
	Register("band", makeBand(false))
	Register("point", makeBand(true))
}

// ---------- coercion helpers ----------

func toNumbers(vs []any, sentinel error) ([]float64, error) {
	out := make([]float64, len(vs))
	for i, v := range vs {
		f, ok := numeric.ToNumber(v)
		if !ok {
			return nil, fmt.Errorf("[%d] %v: %w", i, v, sentinel)
		}
		out[i] = f
	}
	return out, nil
}

func toTimes(vs []any) ([]time.Time, error) {
	out := make([]time.Time, len(vs))
	for i, v := range vs {
		t, ok := numeric.ToTime(v)
		if !ok {
			return nil, fmt.Errorf("[%d] %v: %w", i, v, ErrBadDomain)
		}
		out[i] = t
	}
	return out, nil
}

func anys[T any](xs []T) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func orDefault(vs []any, def ...any) []any {
	if len(vs) == 0 {
		return def
	}
	return vs
}

func unit() []any { return []any{0.0, 1.0} }

// rangeFactory blends loosely typed range values: numbers (optionally
// rounded) stay numbers; anything else goes through interpolate.AnyIn.
func rangeFactory(o Options) interpolate.Factory[any] {
	dyn := interpolate.AnyIn(o.space)
	return func(a, b any) interpolate.Interpolator[any] {
		if o.round {
			x, okA := numeric.ToNumber(a)
			y, okB := numeric.ToNumber(b)
			if okA && okB {
				f := interpolate.Round(x, y)
				return func(t float64) any { return f(t) }
			}
		}
		return dyn(a, b)
	}
}

func formatAny(f func(float64) string) func(any) string {
	return func(v any) string {
		x, ok := numeric.ToNumber(v)
		if !ok {
			return ""
		}
		return f(x)
	}
}

// ---------- continuous ----------

type dynContinuous struct {
	kind string
	c    *Continuous[any]
}

func continuousConstructor(kind string, tr func(Options) Transform) Constructor {
	return func(domain, rng []any, opts ...Option) (Scale, error) {
		o := gatherOptions(opts)
		d, err := toNumbers(orDefault(domain, unit()...), ErrBadDomain)
		if err != nil {
			return nil, err
		}
		c, err := NewContinuous(tr(o), d, orDefault(rng, unit()...), rangeFactory(o), opts...)
		if err != nil {
			return nil, err
		}
		return &dynContinuous{kind: kind, c: c}, nil
	}
}

func (s *dynContinuous) Kind() string { return s.kind }
func (s *dynContinuous) Map(v any) any { return s.c.MapAny(v) }
func (s *dynContinuous) Domain() []any { return anys(s.c.Domain()) }
func (s *dynContinuous) Range() []any { return s.c.Range() }
func (s *dynContinuous) Copy() Scale { return &dynContinuous{kind: s.kind, c: s.c.Copy()} }
func (s *dynContinuous) Nice(count int) { s.c.Nice(count) }
func (s *dynContinuous) Ticks(n int) []any { return anys(s.c.Ticks(n)) }

func (s *dynContinuous) TickFormat(count int) func(any) string {
	return formatAny(s.c.TickFormat(count))
}

// Invert returns a float64, or nil when y or the range is not numeric.
func (s *dynContinuous) Invert(y any) any {
	f, ok := numeric.ToNumber(y)
	if !ok {
		return nil
	}
	x := s.c.Invert(f)
	if x != x {
		return nil
	}
	return x
}

type dynIdentity struct{ s *Identity }

func makeIdentity(domain, _ []any, opts ...Option) (Scale, error) {
	d, err := toNumbers(orDefault(domain, unit()...), ErrBadDomain)
	if err != nil {
		return nil, err
	}
	s, err := NewIdentity(d, opts...)
	if err != nil {
		return nil, err
	}
	return &dynIdentity{s}, nil
}

func (s *dynIdentity) Kind() string { return "identity" }
func (s *dynIdentity) Map(v any) any { return s.s.MapAny(v) }
func (s *dynIdentity) Invert(y any) any { return s.s.MapAny(y) }
func (s *dynIdentity) Domain() []any { return anys(s.s.Domain()) }
func (s *dynIdentity) Range() []any { return anys(s.s.Range()) }
func (s *dynIdentity) Copy() Scale { return &dynIdentity{s.s.Copy()} }
func (s *dynIdentity) Nice(count int) { s.s.Nice(count) }
func (s *dynIdentity) Ticks(n int) []any { return anys(s.s.Ticks(n)) }

func (s *dynIdentity) TickFormat(count int) func(any) string {
	return formatAny(s.s.TickFormat(count))
}

// ---------- time ----------

type dynTime struct {
	kind string
	t    *Time[any]
}

func timeConstructor(kind string, utc bool) Constructor {
	return func(domain, rng []any, opts ...Option) (Scale, error) {
		if utc {
			opts = append(append([]Option(nil), opts...), WithLocation(time.UTC))
		}
		o := gatherOptions(opts)
		if len(domain) == 0 {
			domain = []any{
				time.Date(2000, 1, 1, 0, 0, 0, 0, o.location),
				time.Date(2000, 1, 2, 0, 0, 0, 0, o.location),
			}
		}
		d, err := toTimes(domain)
		if err != nil {
			return nil, err
		}
		t, err := NewTimeWith(d, orDefault(rng, unit()...), rangeFactory(o), opts...)
		if err != nil {
			return nil, err
		}
		return &dynTime{kind: kind, t: t}, nil
	}
}

func (s *dynTime) Kind() string { return s.kind }
func (s *dynTime) Map(v any) any { return s.t.MapAny(v) }
func (s *dynTime) Domain() []any { return anys(s.t.Domain()) }
func (s *dynTime) Range() []any { return s.t.Range() }
func (s *dynTime) Copy() Scale { return &dynTime{kind: s.kind, t: s.t.Copy()} }
func (s *dynTime) Nice(count int) { s.t.Nice(count) }

func (s *dynTime) Ticks(count int) []any { return anys(s.t.Ticks(count)) }

// TickFormat ignores count: labels depend only on the instant.
func (s *dynTime) TickFormat(int) func(any) string {
	f := s.t.TickFormat()
	return func(v any) string {
		t, ok := numeric.ToTime(v)
		if !ok {
			return ""
		}
		return f(t)
	}
}

// Invert returns a time.Time, or nil when y is not invertible.
func (s *dynTime) Invert(y any) any {
	f, ok := numeric.ToNumber(y)
	if !ok {
		return nil
	}
	t := s.t.Invert(f)
	if t.IsZero() {
		return nil
	}
	return t
}

// ---------- sequential / diverging ----------

type dynSequential struct {
	kind string
	t    *transformer[any]
}

// sequentialInterpolator accepts either a single interpolator value or at
// least two stops blended piecewise.
func sequentialInterpolator(rng []any, o Options) (interpolate.Interpolator[any], error) {
	if len(rng) == 1 {
		switch f := rng[0].(type) {
		case interpolate.Interpolator[any]:
			return f, nil
		case func(float64) any:
			return f, nil
		case func(float64) float64:
			return func(t float64) any { return f(t) }, nil
		}
		return nil, fmt.Errorf("%T is not an interpolator: %w", rng[0], ErrBadRange)
	}
	return interpolate.Piecewise(rangeFactory(o), orDefault(rng, unit()...)), nil
}

func sequentialConstructor(kind string, tr func(Options) Transform, diverging bool) Constructor {
	return func(domain, rng []any, opts ...Option) (Scale, error) {
		o := gatherOptions(opts)
		def := unit()
		if diverging {
			def = []any{0.0, 0.5, 1.0}
		}
		d, err := toNumbers(orDefault(domain, def...), ErrBadDomain)
		if err != nil {
			return nil, err
		}
		interp, err := sequentialInterpolator(rng, o)
		if err != nil {
			return nil, err
		}
		t, err := newTransformer(tr(o), d, interp, diverging, o)
		if err != nil {
			return nil, err
		}
		t.factory = rangeFactory(o)
		return &dynSequential{kind: kind, t: t}, nil
	}
}

func (s *dynSequential) Kind() string { return s.kind }
func (s *dynSequential) Map(v any) any { return s.t.MapAny(v) }
func (s *dynSequential) Domain() []any { return anys(s.t.Domain()) }
func (s *dynSequential) Range() []any { return s.t.Range() }
func (s *dynSequential) Copy() Scale { return &dynSequential{kind: s.kind, t: s.t.clone()} }
func (s *dynSequential) Nice(count int) { s.t.Nice(count) }
func (s *dynSequential) Ticks(n int) []any { return anys(s.t.Ticks(n)) }

func (s *dynSequential) TickFormat(count int) func(any) string {
	return formatAny(s.t.TickFormat(count))
}

func (s *dynSequential) Interpolator() interpolate.Interpolator[any] { return s.t.Interpolator() }

type dynSequentialQuantile struct{ s *SequentialQuantile[any] }

func makeSequentialQuantile(domain, rng []any, opts ...Option) (Scale, error) {
	o := gatherOptions(opts)
	d, err := toNumbers(domain, ErrBadDomain)
	if err != nil {
		return nil, err
	}
	interp, err := sequentialInterpolator(rng, o)
	if err != nil {
		return nil, err
	}
	return &dynSequentialQuantile{NewSequentialQuantile(d, interp, opts...)}, nil
}

func (s *dynSequentialQuantile) Kind() string { return "sequential-quantile" }
func (s *dynSequentialQuantile) Map(v any) any { return s.s.MapAny(v) }
func (s *dynSequentialQuantile) Domain() []any { return anys(s.s.Domain()) }
func (s *dynSequentialQuantile) Range() []any { return s.s.Range() }
func (s *dynSequentialQuantile) Copy() Scale { return &dynSequentialQuantile{s.s.Copy()} }

func (s *dynSequentialQuantile) Interpolator() interpolate.Interpolator[any] {
	return s.s.Interpolator()
}

// ---------- discretizing ----------

type dynQuantize struct{ q *Quantize[any] }

func makeQuantize(domain, rng []any, opts ...Option) (Scale, error) {
	d, err := toNumbers(orDefault(domain, unit()...), ErrBadDomain)
	if err != nil {
		return nil, err
	}
	if len(d) != 2 {
		return nil, fmt.Errorf("want 2, got %d: %w", len(d), ErrDomainLength)
	}
	q, err := NewQuantize(d[0], d[1], orDefault(rng, unit()...), opts...)
	if err != nil {
		return nil, err
	}
	return &dynQuantize{q}, nil
}

func (s *dynQuantize) Kind() string { return "quantize" }
func (s *dynQuantize) Map(v any) any { return s.q.MapAny(v) }
func (s *dynQuantize) Domain() []any { return anys(s.q.Domain()) }
func (s *dynQuantize) Range() []any { return s.q.Range() }
func (s *dynQuantize) Copy() Scale { return &dynQuantize{s.q.Copy()} }
func (s *dynQuantize) Nice(count int) { s.q.Nice(count) }
func (s *dynQuantize) Ticks(n int) []any { return anys(s.q.Ticks(n)) }

func (s *dynQuantize) TickFormat(count int) func(any) string {
	return formatAny(s.q.TickFormat(count))
}

func (s *dynQuantize) InvertExtent(y any) (lo, hi any, ok bool) {
	l, h, ok := s.q.InvertExtent(y)
	return l, h, ok
}

type dynQuantile struct{ q *Quantile[any] }

func makeQuantile(domain, rng []any, opts ...Option) (Scale, error) {
	d, err := toNumbers(domain, ErrBadDomain)
	if err != nil {
		return nil, err
	}
	q, err := NewQuantile(d, rng, opts...)
	if err != nil {
		return nil, err
	}
	return &dynQuantile{q}, nil
}

func (s *dynQuantile) Kind() string { return "quantile" }
func (s *dynQuantile) Map(v any) any { return s.q.MapAny(v) }
func (s *dynQuantile) Domain() []any { return anys(s.q.Domain()) }
func (s *dynQuantile) Range() []any { return s.q.Range() }
func (s *dynQuantile) Copy() Scale { return &dynQuantile{s.q.Copy()} }

func (s *dynQuantile) InvertExtent(y any) (lo, hi any, ok bool) {
	l, h, ok := s.q.InvertExtent(y)
	return l, h, ok
}

type dynThreshold struct{ t *Threshold[float64, any] }

func makeThreshold(domain, rng []any, opts ...Option) (Scale, error) {
	d, err := toNumbers(domain, ErrBadDomain)
	if err != nil {
		return nil, err
	}
	t, err := NewThreshold(d, rng, opts...)
	if err != nil {
		return nil, err
	}
	return &dynThreshold{t}, nil
}

func (s *dynThreshold) Kind() string { return "threshold" }
func (s *dynThreshold) Domain() []any { return anys(s.t.Domain()) }
func (s *dynThreshold) Range() []any { return s.t.Range() }
func (s *dynThreshold) Copy() Scale { return &dynThreshold{s.t.Copy()} }

func (s *dynThreshold) Map(v any) any {
	x, ok := numeric.ToNumber(v)
	if !ok {
		return s.t.Unknown()
	}
	return s.t.Map(x)
}

// InvertExtent reports missing bounds as nil.
func (s *dynThreshold) InvertExtent(y any) (lo, hi any, ok bool) {
	e, ok := s.t.InvertExtent(y)
	if !ok {
		return nil, nil, false
	}
	if e.HasLo {
		lo = e.Lo
	}
	if e.HasHi {
		hi = e.Hi
	}
	return lo, hi, true
}

// ---------- discrete ----------

type dynOrdinal struct{ o *Ordinal[any, any] }

func makeOrdinal(domain, rng []any, opts ...Option) (Scale, error) {
	return &dynOrdinal{NewOrdinal(domain, rng, opts...)}, nil
}

func (s *dynOrdinal) Kind() string { return "ordinal" }
func (s *dynOrdinal) Map(v any) any { return s.o.Map(v) }
func (s *dynOrdinal) Domain() []any { return s.o.Domain() }
func (s *dynOrdinal) Range() []any { return s.o.Range() }
func (s *dynOrdinal) Copy() Scale { return &dynOrdinal{s.o.Copy()} }

type dynBand struct {
	kind string
	b    *Band[any]
}

func makeBand(point bool) Constructor {
	return func(domain, rng []any, opts ...Option) (Scale, error) {
		r, err := toNumbers(orDefault(rng, unit()...), ErrBadRange)
		if err != nil {
			return nil, err
		}
		if len(r) != 2 {
			return nil, fmt.Errorf("want 2 range values, got %d: %w", len(r), ErrInvalidRange)
		}
		o := gatherOptions(opts)
		if point {
			p, err := NewPoint(domain, r[0], r[1], opts...)
			if err != nil {
				return nil, err
			}
			return &dynBand{kind: "point", b: p.b}, nil
		}
		b, err := newBand(domain, r[0], r[1], o, o.paddingInner)
		if err != nil {
			return nil, err
		}
		return &dynBand{kind: "band", b: b}, nil
	}
}

func (s *dynBand) Kind() string { return s.kind }
func (s *dynBand) Domain() []any { return s.b.Domain() }
func (s *dynBand) Copy() Scale { return &dynBand{kind: s.kind, b: s.b.Copy()} }
func (s *dynBand) Bandwidth() float64 { return s.b.Bandwidth() }
func (s *dynBand) Step() float64 { return s.b.Step() }

// Map returns a float64 offset, or nil for keys outside the domain.
func (s *dynBand) Map(v any) any {
	x := s.b.Map(v)
	if x != x {
		return nil
	}
	return x
}

func (s *dynBand) Range() []any {
	r0, r1 := s.b.Range()
	return []any{r0, r1}
}
