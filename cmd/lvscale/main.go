// Command lvscale evaluates scales from the command line.
//
//	lvscale eval --config price.yaml 10 250 900
//	lvscale eval --kind log --domain 1,1000 --range 0,300 100
//	lvscale ticks 0 97 10
//	lvscale color steelblue --to white --steps 5 --space lab
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

func init() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd wires every subcommand to a fresh viper instance so that
// commands built in tests do not share state.
func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "lvscale",
		Short: "Map values through d3-style scales, plan ticks and convert colors",
		Long: `lvscale builds a scale (linear, log, time, band, ordinal, sequential...)
from flags or a config file and maps values through it. It also prints
nice axis ticks for a span and converts colors between spaces.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if v.GetBool("verbose") {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.InfoLevel)
			}
		},
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Usage()
		},
	}
	root.PersistentFlags().String("config", "", "Scale definition file (yaml, toml or json)")
	root.PersistentFlags().Bool("verbose", false, "Print detailed execution info")
	v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newVersionCmd())
	root.AddCommand(newEvalCmd(v))
	root.AddCommand(newTicksCmd())
	root.AddCommand(newColorCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lvscale version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "lvscale", Version)
		},
	}
}
