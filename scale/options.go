// SPDX-License-Identifier: MIT

// Package scale: functional configuration shared by every scale kind.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Notes:
//   - Options irrelevant to a kind are ignored (WithBase on a band scale).
//   - Last writer wins when the same option is applied twice.
package scale

import (
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTickCount is the tick count used when a caller has no preference.
	DefaultTickCount = 10

	// DefaultBase is the logarithm base of log scales.
	DefaultBase = 10.0

	// DefaultExponent is the exponent of pow scales (1 ⇒ linear).
	DefaultExponent = 1.0

	// DefaultSqrtExponent is the exponent of sqrt scales.
	DefaultSqrtExponent = 0.5

	// DefaultConstant is the symlog linear-region constant.
	DefaultConstant = 1.0

	// DefaultAlign centres band and point layouts within the range.
	DefaultAlign = 0.5

	// DefaultPadding is the inner and outer padding of band scales.
	DefaultPadding = 0.0

	// DefaultSpace is the color space used to blend non-numeric ranges.
	DefaultSpace = interpolate.SpaceRGB
)

// Options carries scale configuration. Fields are unexported; use Option.
type Options struct {
	clamp        bool
	base         float64
	exponent     float64
	constant     float64
	paddingInner float64
	paddingOuter float64
	align        float64
	round        bool
	unknown      any
	hasUnknown   bool
	nice         int
	location     *time.Location
	space        interpolate.Space
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Options with every documented default applied.
func DefaultOptions() Options {
	return Options{
		base:         DefaultBase,
		exponent:     DefaultExponent,
		constant:     DefaultConstant,
		paddingInner: DefaultPadding,
		paddingOuter: DefaultPadding,
		align:        DefaultAlign,
		location:     time.Local,
		space:        DefaultSpace,
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// WithClamp saturates inputs (and inverted outputs) to the domain.
func WithClamp(on bool) Option {
	return func(o *Options) { o.clamp = on }
}

// WithBase sets the logarithm base. Panics unless base > 0 and base ≠ 1.
func WithBase(base float64) Option {
	if !(base > 0) || base == 1 || math.IsInf(base, 0) {
		panic(fmt.Sprintf("scale: WithBase(%v): base must be positive, finite and not 1", base))
	}
	return func(o *Options) { o.base = base }
}

// WithExponent sets the pow exponent. Panics on NaN, ±Inf or zero.
func WithExponent(k float64) Option {
	if k == 0 || math.IsNaN(k) || math.IsInf(k, 0) {
		panic(fmt.Sprintf("scale: WithExponent(%v): exponent must be finite and non-zero", k))
	}
	return func(o *Options) { o.exponent = k }
}

// WithConstant sets the symlog constant. Panics unless c > 0.
func WithConstant(c float64) Option {
	if !(c > 0) || math.IsInf(c, 0) {
		panic(fmt.Sprintf("scale: WithConstant(%v): constant must be positive and finite", c))
	}
	return func(o *Options) { o.constant = c }
}

// WithPaddingInner sets the fraction of each step left empty between bands.
// Values above 1 are capped at 1. Panics on negative or NaN input.
func WithPaddingInner(p float64) Option {
	mustFraction("WithPaddingInner", p, math.Inf(1))
	return func(o *Options) { o.paddingInner = math.Min(1, p) }
}

// WithPaddingOuter sets the padding before the first and after the last
// band, in multiples of the step. Panics on negative or NaN input.
func WithPaddingOuter(p float64) Option {
	mustFraction("WithPaddingOuter", p, math.Inf(1))
	return func(o *Options) { o.paddingOuter = p }
}

// WithPadding sets inner and outer padding together. Point scales keep
// their inner padding of 1 and only take the outer part.
func WithPadding(p float64) Option {
	mustFraction("WithPadding", p, math.Inf(1))
	return func(o *Options) { o.paddingInner, o.paddingOuter = math.Min(1, p), p }
}

// WithAlign positions the bands within the outer space: 0 flushes left,
// 1 flushes right. Panics outside [0, 1].
func WithAlign(a float64) Option {
	mustFraction("WithAlign", a, 1)
	return func(o *Options) { o.align = a }
}

// WithRound rounds numeric outputs to integers (continuous scales blend
// with interpolate.Round; band scales floor the step).
func WithRound(on bool) Option {
	return func(o *Options) { o.round = on }
}

// WithUnknown sets the value returned for inputs that are missing, NaN or
// not coercible. For ordinal scales it disables implicit domain growth.
// Scale constructors panic when v cannot be converted to their output type.
func WithUnknown(v any) Option {
	return func(o *Options) { o.unknown, o.hasUnknown = v, true }
}

// WithNice extends the domain to nice round values for count ticks right
// after construction. Panics when count is negative.
func WithNice(count int) Option {
	if count < 0 {
		panic(fmt.Sprintf("scale: WithNice(%d): count must be non-negative", count))
	}
	return func(o *Options) { o.nice = count }
}

// WithLocation sets the time zone used by time scales for calendar ticks.
// A nil location means UTC.
func WithLocation(loc *time.Location) Option {
	return func(o *Options) {
		if loc == nil {
			loc = time.UTC
		}
		o.location = loc
	}
}

// WithInterpolation selects the color space used to blend non-numeric
// range values.
func WithInterpolation(space interpolate.Space) Option {
	return func(o *Options) { o.space = space }
}

func mustFraction(name string, v, hi float64) {
	if math.IsNaN(v) || v < 0 || v > hi {
		panic(fmt.Sprintf("scale: %s(%v): value out of range", name, v))
	}
}

// unknownAs returns the configured unknown value converted to R, and
// fallback when none (or nil) is configured. Numbers given for a float64
// scale are coerced, so WithUnknown(0) works without a 0.0 literal. Any
// other mismatch panics like the other With* validators.
func unknownAs[R any](o Options, fallback R) R {
	if !o.hasUnknown || o.unknown == nil {
		return fallback
	}
	if v, ok := o.unknown.(R); ok {
		return v
	}
	var out R
	if p, ok := any(&out).(*float64); ok {
		if x, ok := numeric.ToNumber(o.unknown); ok {
			*p = x
			return out
		}
	}
	panic(fmt.Sprintf("scale: WithUnknown(%v): %T does not fit output type %v",
		o.unknown, o.unknown, reflect.TypeOf(&out).Elem()))
}

// defaultUnknown is NaN for float64 outputs and the zero value otherwise.
func defaultUnknown[R any]() R {
	var zero R
	if p, ok := any(&zero).(*float64); ok {
		*p = math.NaN()
	}
	return zero
}
