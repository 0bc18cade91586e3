package numeric

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ToNumber converts v into a float64. Supported inputs are the built-in
// integer and floating types, bool (0/1), non-empty numeric strings
// (surrounding blanks ignored), time.Time and time.Duration (milliseconds), and any type
// implementing Float64() float64. ok is false when v cannot be coerced or the
// result is NaN.
func ToNumber(v any) (x float64, ok bool) {
	switch t := v.(type) {
	case nil:
		return math.NaN(), false
	case float64:
		x = t
	case float32:
		x = float64(t)
	case int:
		x = float64(t)
	case int8:
		x = float64(t)
	case int16:
		x = float64(t)
	case int32:
		x = float64(t)
	case int64:
		x = float64(t)
	case uint:
		x = float64(t)
	case uint8:
		x = float64(t)
	case uint16:
		x = float64(t)
	case uint32:
		x = float64(t)
	case uint64:
		x = float64(t)
	case bool:
		if t {
			x = 1
		}
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return math.NaN(), false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return math.NaN(), false
		}
		x = f
	case time.Time:
		x = TimeToNumber(t)
	case time.Duration:
		x = float64(t) / float64(time.Millisecond)
	case interface{ Float64() float64 }:
		x = t.Float64()
	default:
		return math.NaN(), false
	}
	if math.IsNaN(x) {
		return x, false
	}
	return x, true
}

// TimeToNumber returns t as fractional milliseconds since the Unix epoch.
func TimeToNumber(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%1e6)/1e6
}

// NumberToTime is the inverse of TimeToNumber. The result is expressed in loc,
// or UTC when loc is nil.
func NumberToTime(ms float64, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	sec := math.Floor(ms / 1000)
	nsec := math.Round((ms - sec*1000) * float64(time.Millisecond))
	return time.Unix(int64(sec), int64(nsec)).In(loc)
}

// ToTime converts v into a time.Time. time.Time passes through, numbers are
// read as epoch milliseconds and strings are parsed as RFC 3339 or as a bare
// date (2006-01-02).
func ToTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		s := strings.TrimSpace(t)
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
			if ts, err := time.Parse(layout, s); err == nil {
				return ts, true
			}
		}
		return time.Time{}, false
	}
	x, ok := ToNumber(v)
	if !ok || math.IsInf(x, 0) {
		return time.Time{}, false
	}
	return NumberToTime(x, time.UTC), true
}
