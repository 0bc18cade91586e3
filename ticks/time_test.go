package ticks_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/lvscale/ticks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(y int, mo time.Month, d, h, m, s int) time.Time {
	return time.Date(y, mo, d, h, m, s, 0, time.UTC)
}

// 1) TestTimeTicks_Hours picks 3-hour ticks for a one-day span.
func TestTimeTicks_Hours(t *testing.T) {
	got := ticks.TimeTicks(utc(2011, 1, 1, 0, 0, 0), utc(2011, 1, 2, 0, 0, 0), 8)
	require.Len(t, got, 9)
	for i, ts := range got {
		assert.Equal(t, utc(2011, 1, 1, 0, 0, 0).Add(time.Duration(3*i)*time.Hour), ts)
	}
}

// 2) TestTimeTicks_Minutes aligns 15-minute ticks to the quarter hour.
func TestTimeTicks_Minutes(t *testing.T) {
	got := ticks.TimeTicks(utc(2011, 1, 1, 12, 7, 0), utc(2011, 1, 1, 13, 29, 0), 5)
	want := []time.Time{
		utc(2011, 1, 1, 12, 15, 0),
		utc(2011, 1, 1, 12, 30, 0),
		utc(2011, 1, 1, 12, 45, 0),
		utc(2011, 1, 1, 13, 0, 0),
		utc(2011, 1, 1, 13, 15, 0),
	}
	assert.Equal(t, want, got)
}

// 3) TestTimeTicks_Months uses month starts and keeps reversed order.
func TestTimeTicks_Months(t *testing.T) {
	got := ticks.TimeTicks(utc(2011, 1, 1, 0, 0, 0), utc(2011, 12, 31, 0, 0, 0), 4)
	want := []time.Time{
		utc(2011, 1, 1, 0, 0, 0),
		utc(2011, 4, 1, 0, 0, 0),
		utc(2011, 7, 1, 0, 0, 0),
		utc(2011, 10, 1, 0, 0, 0),
	}
	assert.Equal(t, want, got)

	rev := ticks.TimeTicks(utc(2011, 12, 31, 0, 0, 0), utc(2011, 1, 1, 0, 0, 0), 4)
	assert.Equal(t, want[3], rev[0])
	assert.Equal(t, want[0], rev[3])
}

// 4) TestTimeTicks_Years thins years by a nice step.
func TestTimeTicks_Years(t *testing.T) {
	got := ticks.TimeTicks(utc(1990, 1, 1, 0, 0, 0), utc(2040, 1, 1, 0, 0, 0), 5)
	require.NotEmpty(t, got)
	for _, ts := range got {
		assert.Equal(t, 0, ts.Year()%10, "year %d", ts.Year())
	}
	assert.Empty(t, ticks.TimeTicks(utc(1990, 1, 1, 0, 0, 0), utc(2040, 1, 1, 0, 0, 0), 0))
}

// 5) TestInterval_FloorCeilRange exercises the interval arithmetic directly.
func TestInterval_FloorCeilRange(t *testing.T) {
	ts := utc(2011, 3, 15, 10, 20, 30)
	assert.Equal(t, utc(2011, 3, 1, 0, 0, 0), ticks.Month.Floor(ts))
	assert.Equal(t, utc(2011, 4, 1, 0, 0, 0), ticks.Month.Ceil(ts))
	assert.Equal(t, utc(2011, 3, 13, 0, 0, 0), ticks.Week.Floor(ts)) // Sunday

	six, ok := ticks.Hour.Every(6)
	require.True(t, ok)
	assert.Equal(t, utc(2011, 3, 15, 6, 0, 0), six.Floor(ts))
	assert.Len(t, six.Range(utc(2011, 3, 15, 0, 0, 0), utc(2011, 3, 16, 0, 0, 0)), 4)

	_, ok = ticks.Hour.Every(0)
	assert.False(t, ok)
}

// 6) TestTimeFormat labels ticks by their coarsest boundary.
func TestTimeFormat(t *testing.T) {
	assert.Equal(t, "2011", ticks.TimeFormat(utc(2011, 1, 1, 0, 0, 0)))
	assert.Equal(t, "March", ticks.TimeFormat(utc(2011, 3, 1, 0, 0, 0)))
	assert.Equal(t, "Mar 13", ticks.TimeFormat(utc(2011, 3, 13, 0, 0, 0)))
	assert.Equal(t, "Tue 15", ticks.TimeFormat(utc(2011, 3, 15, 0, 0, 0)))
	assert.Equal(t, "03 PM", ticks.TimeFormat(utc(2011, 3, 15, 15, 0, 0)))
	assert.Equal(t, "03:20", ticks.TimeFormat(utc(2011, 3, 15, 15, 20, 0)))
	assert.Equal(t, ":30", ticks.TimeFormat(utc(2011, 3, 15, 15, 20, 30)))
	assert.Equal(t, ".250", ticks.TimeFormat(utc(2011, 3, 15, 15, 20, 30).Add(250*time.Millisecond)))
}
