package scale

import (
	"math"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvscale/ticks"
)

// Transform linearises a domain before interpolation and supplies the tick
// and nice rules that suit it. Forward and Inverse must satisfy
// Inverse(Forward(x)) ≈ x over the domain. Ticks, TickFormat and Nice
// receive the untransformed domain (ascending or descending).
type Transform interface {
	Name() string
	Forward(x float64) float64
	Inverse(y float64) float64
	Ticks(domain []float64, count int) []float64
	TickFormat(domain []float64, count int) func(float64) string
	Nice(domain []float64, count int) []float64
}

// Linear is the identity transform with decimal ticks.
type Linear struct{}

func (Linear) Name() string { return "linear" }
func (Linear) Forward(x float64) float64 { return x }
func (Linear) Inverse(y float64) float64 { return y }

func (Linear) Ticks(domain []float64, count int) []float64 {
	return ticks.Ticks(domain[0], domain[len(domain)-1], count)
}

func (Linear) TickFormat(domain []float64, count int) func(float64) string {
	return ticks.Format(domain[0], domain[len(domain)-1], count)
}

func (Linear) Nice(domain []float64, count int) []float64 {
	return niceLinear(domain, count)
}

// niceLinear rounds the outer endpoints of domain; interior stops are kept.
func niceLinear(domain []float64, count int) []float64 {
	d := append([]float64(nil), domain...)
	i0, i1 := 0, len(d)-1
	if d[i1] < d[i0] {
		i0, i1 = i1, i0
	}
	d[i0], d[i1] = ticks.Nice(d[i0], d[i1], count)
	return d
}

// Pow raises values to Exponent, preserving sign. Ticks stay decimal in
// domain space.
type Pow struct {
	Exponent float64
}

func (p Pow) Name() string {
	if p.Exponent == DefaultSqrtExponent {
		return "sqrt"
	}
	return "pow"
}

func (p Pow) Forward(x float64) float64 { return signedPow(x, p.Exponent) }
func (p Pow) Inverse(y float64) float64 { return signedPow(y, 1/p.Exponent) }

func signedPow(x, k float64) float64 {
	switch {
	case k == 1:
		return x
	case k == 0.5:
		if x < 0 {
			return -math.Sqrt(-x)
		}
		return math.Sqrt(x)
	case x < 0:
		return -math.Pow(-x, k)
	}
	return math.Pow(x, k)
}

func (Pow) Ticks(domain []float64, count int) []float64 { return Linear{}.Ticks(domain, count) }

func (Pow) TickFormat(domain []float64, count int) func(float64) string {
	return Linear{}.TickFormat(domain, count)
}

func (Pow) Nice(domain []float64, count int) []float64 { return niceLinear(domain, count) }

// Symlog is the bi-symmetric log transform sign(x)·log1p(|x/Constant|),
// linear near zero and logarithmic far from it. Ticks and nice follow the
// decimal planner over the untransformed domain, which is where the
// linear region lives.
type Symlog struct {
	Constant float64
}

func (Symlog) Name() string { return "symlog" }

func (s Symlog) Forward(x float64) float64 {
	return sign(x) * math.Log1p(math.Abs(x/s.Constant))
}

func (s Symlog) Inverse(y float64) float64 {
	return sign(y) * math.Expm1(math.Abs(y)) * s.Constant
}

func sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return x
}

func (Symlog) Ticks(domain []float64, count int) []float64 { return Linear{}.Ticks(domain, count) }

func (Symlog) TickFormat(domain []float64, count int) func(float64) string {
	return Linear{}.TickFormat(domain, count)
}

func (Symlog) Nice(domain []float64, count int) []float64 { return niceLinear(domain, count) }

// Log maps through the natural logarithm; Base only shapes ticks, nice and
// labels. A domain whose first value is negative is mirrored so that
// strictly negative domains work too. A domain that spans or touches zero
// maps the offending inputs to NaN.
type Log struct {
	Base     float64
	negative bool
}

// NewLogTransform returns the log transform suited to domain.
func NewLogTransform(base float64, domain []float64) Log {
	return Log{Base: base, negative: len(domain) > 0 && domain[0] < 0}
}

func (Log) Name() string { return "log" }

func (l Log) forDomain(domain []float64) Transform { return NewLogTransform(l.Base, domain) }

func (l Log) Forward(x float64) float64 {
	if l.negative {
		return -math.Log(-x)
	}
	return math.Log(x)
}

func (l Log) Inverse(y float64) float64 {
	if l.negative {
		return -math.Exp(-y)
	}
	return math.Exp(y)
}

func (l Log) logs(x float64) float64 {
	if l.negative {
		return -logBase(l.Base, -x)
	}
	return logBase(l.Base, x)
}

func (l Log) pows(x float64) float64 {
	if l.negative {
		return -powBase(l.Base, -x)
	}
	return powBase(l.Base, x)
}

func logBase(base, x float64) float64 {
	switch base {
	case math.E:
		return math.Log(x)
	case 10:
		return math.Log10(x)
	case 2:
		return math.Log2(x)
	}
	return math.Log(x) / math.Log(base)
}

func powBase(base, x float64) float64 {
	if base == 10 && x == math.Trunc(x) && math.Abs(x) < 309 {
		return math.Pow10(int(x))
	}
	if base == math.E {
		return math.Exp(x)
	}
	return math.Pow(base, x)
}

// Ticks emits k·base^i for integer bases when the domain spans fewer
// decades than count, falling back to decimal ticks if that yields fewer
// than count/2 values. Wider domains get powers of the base only.
func (l Log) Ticks(domain []float64, count int) []float64 {
	u, v := domain[0], domain[len(domain)-1]
	reverse := v < u
	if reverse {
		u, v = v, u
	}
	i, j := l.logs(u), l.logs(v)
	base := l.Base
	n := float64(count)
	var z []float64
	if math.Mod(base, 1) == 0 && j-i < n {
		lo, hi := math.Floor(i), math.Ceil(j)
		z = []float64{}
		if u > 0 {
			for e := lo; e <= hi; e++ {
				for k := 1.0; k < base; k++ {
					t := k * l.pows(e)
					if e < 0 {
						t = k / l.pows(-e)
					}
					if t < u {
						continue
					}
					if t > v {
						break
					}
					z = append(z, t)
				}
			}
		} else {
			for e := lo; e <= hi; e++ {
				for k := base - 1; k >= 1; k-- {
					t := k * l.pows(e)
					if e > 0 {
						t = k / l.pows(-e)
					}
					if t < u {
						continue
					}
					if t > v {
						break
					}
					z = append(z, t)
				}
			}
		}
		if float64(len(z))*2 < n {
			z = ticks.Ticks(u, v, count)
		}
	} else {
		z = ticks.TicksF(i, j, math.Min(j-i, n))
		for k := range z {
			z[k] = l.pows(z[k])
		}
	}
	z = finiteOnly(z)
	if reverse {
		for a, b := 0, len(z)-1; a < b; a, b = a+1, b-1 {
			z[a], z[b] = z[b], z[a]
		}
	}
	return z
}

// TickFormat labels only the ticks whose leading digit is small enough for
// the density of a default tick set, blanking the rest. Base 10 uses SI prefixes (1k, 10M); other
// bases use grouped decimals.
func (l Log) TickFormat(domain []float64, count int) func(float64) string {
	format := func(x float64) string { return humanize.Commaf(x) }
	if l.Base == 10 {
		format = func(x float64) string {
			return strings.ReplaceAll(strings.TrimSpace(humanize.SI(x, "")), " ", "")
		}
	}
	n := len(l.Ticks(domain, DefaultTickCount))
	if n == 0 {
		return format
	}
	k := math.Max(1, l.Base*float64(count)/float64(n))
	return func(x float64) string {
		i := x / l.pows(math.Round(l.logs(x)))
		if i*l.Base < l.Base-0.5 {
			i *= l.Base
		}
		if i <= k {
			return format(x)
		}
		return ""
	}
}

// Nice widens the outer endpoints to whole powers of the base.
func (l Log) Nice(domain []float64, _ int) []float64 {
	d := append([]float64(nil), domain...)
	i0, i1 := 0, len(d)-1
	if d[i1] < d[i0] {
		i0, i1 = i1, i0
	}
	d[i0] = l.pows(math.Floor(l.logs(d[i0])))
	d[i1] = l.pows(math.Ceil(l.logs(d[i1])))
	return d
}

func finiteOnly(xs []float64) []float64 {
	out := xs[:0]
	for _, x := range xs {
		if !math.IsNaN(x) && !math.IsInf(x, 0) {
			out = append(out, x)
		}
	}
	return out
}
