package color_test

import (
	"fmt"

	"github.com/katalvlaran/lvscale/color"
)

// ExampleParse reads a CSS color and prints it in several notations.
func ExampleParse() {
	c := color.MustParse("steelblue").RGB()
	fmt.Println(c.FormatHex())
	fmt.Println(c.FormatRGB())
	fmt.Println(c.WithOpacity(0.5))
	// Output:
	// #4682b4
	// rgb(70, 130, 180)
	// rgba(70, 130, 180, 0.5)
}

// ExampleRGB_Darker shows the gamma-like brightness adjustment.
func ExampleRGB_Darker() {
	c := color.NewRGB(100, 50, 20)
	fmt.Println(c.Darker(1))
	// Output:
	// rgb(70, 35, 14)
}

// ExampleHSL_FormatHSL normalizes the hue before printing.
func ExampleHSL_FormatHSL() {
	fmt.Println(color.NewHSL(480, 0.5, 0.25).FormatHSL())
	// Output:
	// hsl(120, 50%, 25%)
}
