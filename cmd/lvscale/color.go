package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/lvscale/color"
	"github.com/katalvlaran/lvscale/interpolate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newColorCmd() *cobra.Command {
	var (
		to    string
		steps int
		space string
	)
	cmd := &cobra.Command{
		Use:   "color SPEC...",
		Short: "Convert CSS colors between spaces or blend two of them",
		Long: `Parses each CSS color (#hex, rgb(), hsl() or a name) and prints it in
the RGB, HSL, Lab, HCL and Cubehelix spaces. With --to, prints --steps
colors blended from the first SPEC to the --to color in --space.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if to != "" {
				sp, err := interpolate.ParseSpace(space)
				if err != nil {
					return err
				}
				a, err := color.Parse(args[0])
				if err != nil {
					return err
				}
				b, err := color.Parse(to)
				if err != nil {
					return err
				}
				log.WithFields(log.Fields{"from": args[0], "to": to, "space": sp}).Debug("Blending colors")
				for _, c := range interpolate.Quantize(interpolate.ColorIn(sp)(a, b), steps) {
					fmt.Fprintln(out, c.RGB().FormatHex())
				}
				return nil
			}
			for _, spec := range args {
				c, err := color.Parse(spec)
				if err != nil {
					return err
				}
				describe(out, spec, c)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&to, "to", "", "Blend towards this color")
	cmd.Flags().IntVar(&steps, "steps", 5, "Number of blended colors, ends included")
	cmd.Flags().StringVar(&space, "space", string(interpolate.SpaceRGB), "Blend space: rgb, hsl, hsl-long, lab, hcl, hcl-long, cubehelix, cubehelix-long")
	return cmd
}

func describe(out io.Writer, spec string, c color.Color) {
	rgb := c.RGB()
	lab := color.ToLab(c)
	hcl := color.ToHCL(c)
	ch := color.ToCubehelix(c)
	fmt.Fprintf(out, "%s\n", spec)
	fmt.Fprintf(out, "  hex\t%s\n", rgb.FormatHex())
	fmt.Fprintf(out, "  rgb\t%s\n", rgb.FormatRGB())
	fmt.Fprintf(out, "  hsl\t%s\n", color.ToHSL(c).FormatHSL())
	fmt.Fprintf(out, "  lab\tlab(%.2f, %.2f, %.2f)\n", lab.L, lab.A, lab.B)
	fmt.Fprintf(out, "  hcl\thcl(%.2f, %.2f, %.2f)\n", hcl.H, hcl.C, hcl.L)
	fmt.Fprintf(out, "  cubehelix\tcubehelix(%.2f, %.2f, %.2f)\n", ch.H, ch.S, ch.L)
}
