package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "qcircuit",
		Short: "State-vector quantum circuit simulator",
		Long: `qcircuit - compile gate instructions into one operator and evolve a state vector.

Instructions are case insensitive:
  <gate> <qubit>                        gate is X, Y, Z, H, Id, S, SDagger, T or TDagger
  cnot <control> <target>
  classicalcontrol <bit> <target> <gate>

Examples:
  qcircuit run -q 2 "h 0; cnot 0 1"             # sample a Bell pair 1024 times
  qcircuit run -q 1 --mode quantum "h 0"        # print the amplitudes
  qcircuit run --file teleport.yaml --seed 7    # run a circuit file
  qcircuit gates                                # list the gate library`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file (defaults, QCIRCUIT_* env vars)")

	root.AddCommand(newRunCmd(&configPath))
	root.AddCommand(newGatesCmd())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "qcircuit", version)
		},
	})
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintln(os.Stderr, "hint:", hint)
		}
		os.Exit(1)
	}
}
