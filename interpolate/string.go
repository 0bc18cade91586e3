package interpolate

import (
	"regexp"
	"strconv"
	"strings"
)

var reNumber = regexp.MustCompile(`[-+]?(?:\d+\.?\d*|\.?\d+)(?:[eE][-+]?\d+)?`)

// String blends the numbers embedded in a and b pairwise, in order of
// appearance. The literal text between numbers is taken from b, as are any
// numbers of b without a counterpart in a. Numbers equal as text in both
// strings are copied verbatim. At t=1 the result is b itself.
//
//	String("M10,10", "M20,30")(0.5) // "M15,20"
func String(a, b string) Interpolator[string] {
	am := reNumber.FindAllStringIndex(a, -1)
	bm := reNumber.FindAllStringIndex(b, -1)
	n := min(len(am), len(bm))

	type slot struct {
		i int
		x Interpolator[float64]
	}
	var (
		parts []string
		hole  []bool
		q     []slot
		bi    int
	)
	appendLit := func(s string) {
		if k := len(parts) - 1; k >= 0 && !hole[k] {
			parts[k] += s
			return
		}
		parts = append(parts, s)
		hole = append(hole, false)
	}
	for k := 0; k < n; k++ {
		if bs := bm[k][0]; bs > bi {
			appendLit(b[bi:bs])
		}
		as, bs := a[am[k][0]:am[k][1]], b[bm[k][0]:bm[k][1]]
		if as == bs {
			appendLit(bs)
		} else {
			x, _ := strconv.ParseFloat(as, 64)
			y, _ := strconv.ParseFloat(bs, 64)
			parts = append(parts, "")
			hole = append(hole, true)
			q = append(q, slot{i: len(parts) - 1, x: Number(x, y)})
		}
		bi = bm[k][1]
	}
	if bi < len(b) {
		appendLit(b[bi:])
	}

	if len(parts) < 2 {
		if len(q) > 0 {
			x := q[0].x
			return func(t float64) string {
				if t == 1 {
					return b
				}
				return FormatNumber(x(t))
			}
		}
		return Constant(b)
	}
	return func(t float64) string {
		if t == 1 {
			return b
		}
		out := make([]string, len(parts))
		copy(out, parts)
		for _, s := range q {
			out[s.i] = FormatNumber(s.x(t))
		}
		return strings.Join(out, "")
	}
}
