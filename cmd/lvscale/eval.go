package main

import (
	"fmt"

	"github.com/katalvlaran/lvscale/scale"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newEvalCmd(v *viper.Viper) *cobra.Command {
	var invert bool
	cmd := &cobra.Command{
		Use:   "eval VALUE...",
		Short: "Map values through a scale",
		Long: `Builds the scale given by --config and/or --kind, --domain and --range
and prints each input next to its output. With --invert the values are
range values and the matching domain values are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, v)
			if err != nil {
				return err
			}
			s, err := cfg.build()
			if err != nil {
				return err
			}
			f := s.Map
			if invert {
				inv, ok := s.(scale.Inverter)
				if !ok {
					return fmt.Errorf("%s scale cannot be inverted", s.Kind())
				}
				f = inv.Invert
			}
			out := cmd.OutOrStdout()
			for _, a := range args {
				y := f(parseArg(a))
				if y == nil {
					log.WithField("value", a).Debug("No output for value")
				}
				fmt.Fprintf(out, "%s\t%s\n", a, formatValue(y))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&invert, "invert", false, "Invert range values back to the domain")
	addScaleFlags(cmd, v)
	return cmd
}
