package main

import (
	"fmt"

	qcircuit "github.com/Q-lds/quantum-circuit-simulator"
	"github.com/cockroachdb/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func newGatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gates",
		Short: "List the single-qubit gate library",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := pterm.TableData{{"gate", "row 0", "row 1"}}
			for _, g := range qcircuit.Gates() {
				m, err := g.Matrix()
				if err != nil {
					return err
				}
				data = append(data, []string{
					g.String(),
					fmt.Sprintf("%.4f %.4f", m[0][0], m[0][1]),
					fmt.Sprintf("%.4f %.4f", m[1][0], m[1][1]),
				})
			}

			table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
			if err != nil {
				return errors.Wrap(err, "render gates")
			}
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
