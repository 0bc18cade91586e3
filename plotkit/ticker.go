package plotkit

import (
	"math"
	"time"

	"github.com/katalvlaran/lvscale/scale"
	"github.com/katalvlaran/lvscale/ticks"
	"gonum.org/v1/plot"
)

// Ticker places ticks with a transform's tick planner. A nil Transform
// means linear; Count ≤ 0 means scale.DefaultTickCount.
type Ticker struct {
	Transform scale.Transform
	Count     int
}

var _ plot.Ticker = Ticker{}

// Ticks implements plot.Ticker.
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	tr := resolve(t.Transform, min, max)
	count := t.Count
	if count <= 0 {
		count = scale.DefaultTickCount
	}
	domain := []float64{min, max}
	format := tr.TickFormat(domain, count)
	values := tr.Ticks(domain, count)
	out := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		out = append(out, plot.Tick{Value: v, Label: format(v)})
	}
	return out
}

// TimeTicker places calendar ticks on an axis whose values are Unix
// seconds, as produced by plot.TimeTicks users. A nil Location means UTC.
type TimeTicker struct {
	Location *time.Location
	Count    int
}

var _ plot.Ticker = TimeTicker{}

// Ticks implements plot.Ticker.
func (t TimeTicker) Ticks(min, max float64) []plot.Tick {
	loc := t.Location
	if loc == nil {
		loc = time.UTC
	}
	count := t.Count
	if count <= 0 {
		count = scale.DefaultTickCount
	}
	start, stop := fromUnix(min, loc), fromUnix(max, loc)
	values := ticks.TimeTicks(start, stop, count)
	out := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		out = append(out, plot.Tick{
			Value: float64(v.Unix()) + float64(v.Nanosecond())/float64(time.Second),
			Label: ticks.TimeFormat(v),
		})
	}
	return out
}

func fromUnix(sec float64, loc *time.Location) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second))).In(loc)
}

// Normalizer maps axis values through a transform so log, pow and symlog
// axes draw with the same geometry as the corresponding scales. A nil
// Transform means linear.
type Normalizer struct {
	Transform scale.Transform
}

var _ plot.Normalizer = Normalizer{}

// Normalize implements plot.Normalizer: the position of x on [min, max]
// in transformed space, 0 at min and 1 at max.
func (n Normalizer) Normalize(min, max, x float64) float64 {
	tr := resolve(n.Transform, min, max)
	t0, t1 := tr.Forward(min), tr.Forward(max)
	if t0 == t1 {
		return 0.5
	}
	return (tr.Forward(x) - t0) / (t1 - t0)
}

// resolve fills in defaults: linear for nil, and a log transform oriented
// to the sign of the axis with the default base when none is set.
func resolve(tr scale.Transform, min, max float64) scale.Transform {
	if tr == nil {
		return scale.Linear{}
	}
	if lt, ok := tr.(scale.Log); ok {
		base := lt.Base
		if base == 0 {
			base = scale.DefaultBase
		}
		return scale.NewLogTransform(base, []float64{min, max})
	}
	return tr
}
