package interpolate_test

import (
	"fmt"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
)

// ExampleString blends the numbers embedded in two strings.
func ExampleString() {
	f := interpolate.String("M10,10", "M20,30")
	fmt.Println(f(0.5))
	// Output:
	// M15,20
}

// ExampleRGB blends two colors channel by channel.
func ExampleRGB() {
	f := interpolate.RGB(color.NewRGB(255, 0, 0), color.NewRGB(0, 0, 255))
	fmt.Println(f(0.5))
	// Output:
	// rgb(128, 0, 128)
}

// ExampleQuantize samples an interpolator at evenly spaced points.
func ExampleQuantize() {
	fmt.Println(interpolate.Quantize(interpolate.Number(0, 10), 5))
	// Output:
	// [0 2.5 5 7.5 10]
}
