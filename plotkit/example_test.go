package plotkit_test

import (
	"fmt"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/plotkit"
	"github.com/katalvlaran/lvscale/scale"
)

// ExampleTicker prints the labelled ticks of a log axis.
func ExampleTicker() {
	for _, t := range (plotkit.Ticker{Transform: scale.Log{Base: 10}, Count: 3}).Ticks(1, 1000) {
		if t.Label != "" {
			fmt.Print(t.Label, " ")
		}
	}
	fmt.Println()
	// Output:
	// 1 10 100 1k
}

// ExampleSample builds a five-step palette.
func ExampleSample() {
	p := plotkit.Sample(interpolate.RGB(color.MustParse("black"), color.MustParse("white")), 5)
	for _, c := range p.Colors() {
		fmt.Print(c.(color.RGB).FormatHex(), " ")
	}
	fmt.Println()
	// Output:
	// #000000 #404040 #808080 #bfbfbf #ffffff
}
