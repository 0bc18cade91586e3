package ticks

import (
	"fmt"
	"math"
	"time"

	"github.com/tebeka/strftime"
)

// Nominal interval durations in milliseconds. Months and years are taken as
// 30 and 365 days; they only steer interval selection, never arithmetic.
const (
	DurationSecond = 1e3
	DurationMinute = DurationSecond * 60
	DurationHour   = DurationMinute * 60
	DurationDay    = DurationHour * 24
	DurationWeek   = DurationDay * 7
	DurationMonth  = DurationDay * 30
	DurationYear   = DurationDay * 365
)

// Interval is a calendar unit (second, day, month, ...) optionally thinned
// to every step-th boundary. All arithmetic happens in the location of the
// time passed in, so the same Interval serves local and UTC scales.
type Interval struct {
	name   string
	floor  func(time.Time) time.Time
	offset func(time.Time, int) time.Time
	field  func(time.Time) int
	step   int
}

// Name returns the unit name, for example "hour".
func (iv Interval) Name() string { return iv.name }

// Step returns the thinning step (1 for the plain unit).
func (iv Interval) Step() int { return iv.step }

func (iv Interval) matches(t time.Time) bool {
	if iv.step <= 1 {
		return true
	}
	return iv.field(t)%iv.step == 0
}

// Floor returns the latest boundary at or before t.
func (iv Interval) Floor(t time.Time) time.Time {
	t = iv.floor(t)
	for !iv.matches(t) {
		t = iv.floor(t.Add(-time.Nanosecond))
	}
	return t
}

// Offset moves t forward by n boundaries (backward when n < 0). t is assumed
// to lie on a boundary.
func (iv Interval) Offset(t time.Time, n int) time.Time {
	if iv.step <= 1 {
		return iv.offset(t, n)
	}
	for ; n > 0; n-- {
		t = iv.offset(t, 1)
		for !iv.matches(t) {
			t = iv.offset(t, 1)
		}
	}
	for ; n < 0; n++ {
		t = iv.offset(t, -1)
		for !iv.matches(t) {
			t = iv.offset(t, -1)
		}
	}
	return t
}

// Ceil returns the earliest boundary at or after t.
func (iv Interval) Ceil(t time.Time) time.Time {
	f := iv.Floor(t)
	if f.Equal(t) {
		return f
	}
	return iv.Floor(iv.Offset(f, 1))
}

// Range returns every boundary in [start, stop).
func (iv Interval) Range(start, stop time.Time) []time.Time {
	out := []time.Time{}
	t := iv.Ceil(start)
	for t.Before(stop) {
		out = append(out, t)
		next := iv.Floor(iv.Offset(t, 1))
		if !next.After(t) {
			break
		}
		t = next
	}
	return out
}

// Every returns an interval keeping only boundaries whose unit field is a
// multiple of step (every 15 minutes: 00, 15, 30, 45). ok is false for a
// non-positive step.
func (iv Interval) Every(step int) (Interval, bool) {
	if step <= 0 {
		return Interval{}, false
	}
	if step == 1 {
		return iv, true
	}
	out := iv
	out.step = step
	switch iv.name {
	case "millisecond":
		k := int64(step)
		out.floor = func(t time.Time) time.Time {
			ms := floorDiv(t.UnixMilli(), k) * k
			return time.UnixMilli(ms).In(t.Location())
		}
		out.offset = func(t time.Time, n int) time.Time {
			return t.Add(time.Duration(int64(n)*k) * time.Millisecond)
		}
		out.step = 1
	case "year":
		k := step
		out.floor = func(t time.Time) time.Time {
			y := int(math.Floor(float64(t.Year())/float64(k))) * k
			return time.Date(y, time.January, 1, 0, 0, 0, 0, t.Location())
		}
		out.offset = func(t time.Time, n int) time.Time {
			return t.AddDate(n*k, 0, 0)
		}
		out.step = 1
	}
	return out, true
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clock(t time.Time, h, m, s, ns int) time.Time {
	y, mo, d := t.Date()
	return time.Date(y, mo, d, h, m, s, ns, t.Location())
}

// Calendar units. Floors are computed in the location of the argument.
var (
	Millisecond = Interval{
		name: "millisecond",
		floor: func(t time.Time) time.Time {
			return time.UnixMilli(t.UnixMilli()).In(t.Location())
		},
		offset: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Millisecond) },
		field:  func(t time.Time) int { return t.Nanosecond() / 1e6 },
		step:   1,
	}
	Second = Interval{
		name: "second",
		floor: func(t time.Time) time.Time {
			return clock(t, t.Hour(), t.Minute(), t.Second(), 0)
		},
		offset: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Second) },
		field:  func(t time.Time) int { return t.Second() },
		step:   1,
	}
	Minute = Interval{
		name:   "minute",
		floor:  func(t time.Time) time.Time { return clock(t, t.Hour(), t.Minute(), 0, 0) },
		offset: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Minute) },
		field:  func(t time.Time) int { return t.Minute() },
		step:   1,
	}
	Hour = Interval{
		name:   "hour",
		floor:  func(t time.Time) time.Time { return clock(t, t.Hour(), 0, 0, 0) },
		offset: func(t time.Time, n int) time.Time { return t.Add(time.Duration(n) * time.Hour) },
		field:  func(t time.Time) int { return t.Hour() },
		step:   1,
	}
	Day = Interval{
		name:   "day",
		floor:  func(t time.Time) time.Time { return clock(t, 0, 0, 0, 0) },
		offset: func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) },
		field:  func(t time.Time) int { return t.Day() - 1 },
		step:   1,
	}
	// Week boundaries fall on Sunday midnight.
	Week = Interval{
		name: "week",
		floor: func(t time.Time) time.Time {
			d := clock(t, 0, 0, 0, 0)
			return d.AddDate(0, 0, -int(d.Weekday()))
		},
		offset: func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) },
		field: func(t time.Time) int {
			// whole weeks since Sunday 1970-01-04
			y, m, d := t.Date()
			days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
			return int(floorDiv(days-3, 7))
		},
		step: 1,
	}
	Month = Interval{
		name: "month",
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
		},
		offset: func(t time.Time, n int) time.Time {
			return time.Date(t.Year(), t.Month()+time.Month(n), 1, 0, 0, 0, 0, t.Location())
		},
		field: func(t time.Time) int { return int(t.Month()) - 1 },
		step:  1,
	}
	Year = Interval{
		name: "year",
		floor: func(t time.Time) time.Time {
			return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		},
		offset: func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) },
		field:  func(t time.Time) int { return t.Year() },
		step:   1,
	}
)

type tickInterval struct {
	unit     Interval
	step     int
	duration float64
}

var tickIntervals = []tickInterval{
	{Second, 1, DurationSecond},
	{Second, 5, 5 * DurationSecond},
	{Second, 15, 15 * DurationSecond},
	{Second, 30, 30 * DurationSecond},
	{Minute, 1, DurationMinute},
	{Minute, 5, 5 * DurationMinute},
	{Minute, 15, 15 * DurationMinute},
	{Minute, 30, 30 * DurationMinute},
	{Hour, 1, DurationHour},
	{Hour, 3, 3 * DurationHour},
	{Hour, 6, 6 * DurationHour},
	{Hour, 12, 12 * DurationHour},
	{Day, 1, DurationDay},
	{Day, 2, 2 * DurationDay},
	{Week, 1, DurationWeek},
	{Month, 1, DurationMonth},
	{Month, 3, 3 * DurationMonth},
	{Year, 1, DurationYear},
}

func ms(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%1e6)/1e6
}

// TimeTickInterval picks the calendar interval whose spacing is closest to
// |stop−start|/count. Spans finer than a second fall back to thinned
// milliseconds and spans coarser than a year to thinned years. ok is false
// when no sensible interval exists (for example count ≤ 0).
func TimeTickInterval(start, stop time.Time, count int) (Interval, bool) {
	if count <= 0 {
		return Interval{}, false
	}
	a, b := ms(start), ms(stop)
	target := math.Abs(b-a) / float64(count)
	i := 0
	for i < len(tickIntervals) && tickIntervals[i].duration <= target {
		i++
	}
	if i == len(tickIntervals) {
		step := TickStep(a/DurationYear, b/DurationYear, count)
		return Year.Every(int(math.Floor(math.Abs(step))))
	}
	if i == 0 {
		step := math.Max(math.Abs(TickStep(a, b, count)), 1)
		return Millisecond.Every(int(step))
	}
	pick := tickIntervals[i]
	if target/tickIntervals[i-1].duration < tickIntervals[i].duration/target {
		pick = tickIntervals[i-1]
	}
	return pick.unit.Every(pick.step)
}

// TimeTicks returns calendar-aligned ticks covering [start, stop] inclusive,
// in the location of start. A reversed span yields descending ticks.
func TimeTicks(start, stop time.Time, count int) []time.Time {
	reverse := stop.Before(start)
	if reverse {
		start, stop = stop, start
	}
	iv, ok := TimeTickInterval(start, stop, count)
	if !ok {
		return []time.Time{}
	}
	out := iv.Range(start, stop.Add(time.Millisecond))
	if reverse {
		for l, r := 0, len(out)-1; l < r; l, r = l+1, r-1 {
			out[l], out[r] = out[r], out[l]
		}
	}
	return out
}

// TimeFormat labels a tick by the coarsest calendar unit it sits on:
// milliseconds as ".123", seconds as ":05", minutes as "03:04", hours as
// "03 PM", days as "Mon 02", weeks as "Jan 02", months as "January" and
// years as "2006".
func TimeFormat(t time.Time) string {
	var layout string
	switch {
	case Second.Floor(t).Before(t):
		return fmt.Sprintf(".%03d", t.Nanosecond()/1e6)
	case Minute.Floor(t).Before(t):
		layout = ":%S"
	case Hour.Floor(t).Before(t):
		layout = "%I:%M"
	case Day.Floor(t).Before(t):
		layout = "%I %p"
	case Month.Floor(t).Before(t):
		if Week.Floor(t).Before(t) {
			layout = "%a %d"
		} else {
			layout = "%b %d"
		}
	case Year.Floor(t).Before(t):
		layout = "%B"
	default:
		layout = "%Y"
	}
	s, err := strftime.Format(layout, t)
	if err != nil {
		return t.String()
	}
	return s
}
