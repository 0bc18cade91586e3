package main

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/scale"
	"github.com/katalvlaran/lvscale/ticks"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newTicksCmd() *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "ticks START STOP [COUNT]",
		Short: "Print nice ticks for a span",
		Long: `Prints about COUNT (default 10) ticks covering [START, STOP] with their
labels. --kind picks the planner: linear, log, pow, sqrt, symlog, or utc and
time for dates such as 2000-01-01.`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			count := scale.DefaultTickCount
			if len(args) == 3 {
				n, err := strconv.Atoi(args[2])
				if err != nil {
					return fmt.Errorf("count %q: %w", args[2], err)
				}
				count = n
			}
			domain := []interface{}{parseArg(args[0]), parseArg(args[1])}
			s, err := scale.Make(kind, domain, nil)
			if err != nil {
				return err
			}
			tk, ok := s.(scale.Ticker)
			if !ok {
				return fmt.Errorf("%s scale has no ticks", kind)
			}
			out := cmd.OutOrStdout()
			if kind == "linear" {
				a, _ := domain[0].(float64)
				b, _ := domain[1].(float64)
				fmt.Fprintf(out, "# step %s\n", interpolate.FormatNumber(ticks.TickStep(a, b, count)))
			}
			values := tk.Ticks(count)
			format := tk.TickFormat(count)
			log.WithFields(log.Fields{"kind": kind, "count": count, "ticks": len(values)}).Debug("Ticks planned")
			for _, t := range values {
				fmt.Fprintf(out, "%s\t%s\n", formatValue(t), format(t))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "linear", "Tick planner: linear, log, pow, sqrt, symlog, time or utc")
	return cmd
}
