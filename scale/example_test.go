package scale_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/scale"
)

// ExampleNewLinear maps and inverts a linear scale.
func ExampleNewLinear() {
	s, _ := scale.NewLinear([]float64{0, 100}, []float64{0, 1})
	fmt.Println(s.Map(25), s.Invert(0.75))
	fmt.Println(s.Ticks(4))
	// Output:
	// 0.25 75
	// [0 20 40 60 80 100]
}

// ExampleNewLog labels only the leading digits of a log axis.
func ExampleNewLog() {
	s, _ := scale.NewLog([]float64{1, 1000}, []float64{0, 300})
	fmt.Printf("%.1f\n", s.Map(100))
	f := s.TickFormat(3)
	for _, x := range []float64{1, 2, 10, 50, 100} {
		fmt.Printf("%q ", f(x))
	}
	fmt.Println()
	// Output:
	// 200.0
	// "1" "" "10" "" "100"
}

// ExampleNewBand lays out three bars.
func ExampleNewBand() {
	b, _ := scale.NewBand([]string{"a", "b", "c"}, 0, 960)
	fmt.Println(b.Map("a"), b.Map("b"), b.Map("c"), b.Bandwidth())
	// Output:
	// 0 320 640 320
}

// ExampleNewOrdinal assigns colors in first-seen order.
func ExampleNewOrdinal() {
	s := scale.NewOrdinal[string, string](nil, []string{"red", "green"})
	fmt.Println(s.Map("x"), s.Map("y"), s.Map("z"), s.Map("x"))
	// Output:
	// red green red red
}

// ExampleNewDiverging centres an off-centre midpoint.
func ExampleNewDiverging() {
	s, _ := scale.NewDiverging([]float64{-1, 0, 3}, interpolate.Number(0, 100))
	fmt.Println(s.Map(-1), s.Map(0), s.Map(1.5), s.Map(3))
	// Output:
	// 0 50 75 100
}

// ExampleNewUTC formats calendar ticks.
func ExampleNewUTC() {
	s, _ := scale.NewUTC([]time.Time{
		time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC),
	}, []float64{0, 960})
	f := s.TickFormat()
	for _, t := range s.Ticks(4) {
		fmt.Printf("%s=%v ", f(t), s.Map(t))
	}
	fmt.Println()
	// Output:
	// 2000=0 06 AM=240 12 PM=480 06 PM=720 Jan 02=960
}

// ExampleMake builds a scale by kind with a color range.
func ExampleMake() {
	s, _ := scale.Make("linear", []any{0, 1}, []any{"red", "blue"})
	fmt.Println(s.Map(0.5))
	q, _ := scale.Make("quantize", []any{0, 1}, []any{"low", "mid", "high"})
	fmt.Println(q.Map(0.9))
	// Output:
	// rgb(128, 0, 128)
	// high
}
