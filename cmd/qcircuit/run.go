package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	qcircuit "github.com/Q-lds/quantum-circuit-simulator"
	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type runOptions struct {
	qubits int
	bits   int
	file   string
	shots  int
	seed   uint64
	mode   string
	dump   bool
}

func newRunCmd(configPath *string) *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "run [instructions]",
		Short: "Run a circuit and read it out",
		Long: `Run compiles all instructions into one operator, applies it to the ground
state and reads the register out.

Instructions are given as arguments and may be separated by ';'.
With --file they are read from a YAML circuit file instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("shots") {
				cfg.Shots = opts.shots
			}
			if flags.Changed("seed") {
				cfg.Seed = opts.seed
			}
			if flags.Changed("mode") {
				cfg.ReadoutMode = opts.mode
			}
			return runCircuit(cmd.OutOrStdout(), cfg, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.qubits, "qubits", "q", 1, "Number of qubits")
	cmd.Flags().IntVarP(&opts.bits, "bits", "b", 0, "Number of classical bits (0 = one per qubit)")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "YAML circuit file")
	cmd.Flags().IntVarP(&opts.shots, "shots", "s", 1024, "Classical readouts to sample")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Sampling seed (0 = unseeded)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "classical", "Readout mode: quantum or classical")
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "Dump the raw amplitude vector")
	return cmd
}

func loadRunProgram(opts runOptions, args []string) (*qcircuit.Program, error) {
	if opts.file != "" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return qcircuit.LoadProgram(f)
	}

	program := &qcircuit.Program{
		Qubits: opts.qubits,
		Bits:   opts.bits,
	}
	if program.Bits == 0 {
		program.Bits = program.Qubits
	}
	for _, part := range strings.Split(strings.Join(args, " "), ";") {
		if part = strings.TrimSpace(part); part != "" {
			program.Instructions = append(program.Instructions, part)
		}
	}
	return program, nil
}

func runCircuit(w io.Writer, cfg *qcircuit.Config, opts runOptions, args []string) error {
	mode, err := qcircuit.ParseReadoutMode(cfg.ReadoutMode)
	if err != nil {
		return err
	}

	program, err := loadRunProgram(opts, args)
	if err != nil {
		return err
	}

	metrics := qcircuit.NewMetrics()
	circuit, instructions, err := program.Build(
		qcircuit.WithConfig(cfg),
		qcircuit.WithMetrics(metrics),
	)
	if err != nil {
		return err
	}
	if err := circuit.Run(instructions...); err != nil {
		return err
	}

	fmt.Fprintln(w, pterm.Info.Sprintf("circuit %s: %d qubits, %d instructions",
		circuit.Name(), circuit.State().NumQubits(), len(instructions)))

	if mode == qcircuit.ReadoutQuantum {
		amplitudes, err := circuit.ReadOut(string(mode))
		if err != nil {
			return err
		}
		if opts.dump {
			spew.Fdump(w, amplitudes)
		}
		return renderAmplitudes(w, circuit.State())
	}

	stats, err := circuit.Statistics(cfg.Shots)
	if err != nil {
		return err
	}
	if opts.dump {
		spew.Fdump(w, circuit.State().Amplitudes())
	}
	return renderCounts(w, qcircuit.Counts(stats), cfg.Shots)
}

func renderAmplitudes(w io.Writer, state *qcircuit.QuantumState) error {
	probs := state.Probabilities()
	data := pterm.TableData{{"state", "amplitude", "probability"}}
	for i, a := range state.FormatAmplitudes(4) {
		data = append(data, []string{
			fmt.Sprintf("|%0*b⟩", state.NumQubits(), i),
			fmt.Sprintf("%.4f", a),
			fmt.Sprintf("%.4f", probs[i]),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render amplitudes")
	}
	fmt.Fprintln(w, table)
	return nil
}

func renderCounts(w io.Writer, counts []qcircuit.Count, shots int) error {
	data := pterm.TableData{{"outcome", "count", "frequency"}}
	bars := make(pterm.Bars, 0, len(counts))
	for _, c := range counts {
		data = append(data, []string{
			c.Outcome,
			fmt.Sprintf("%d", c.Count),
			fmt.Sprintf("%.4f", float64(c.Count)/float64(shots)),
		})
		bars = append(bars, pterm.Bar{Label: c.Outcome, Value: c.Count})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Wrap(err, "render counts")
	}
	fmt.Fprintln(w, table)

	if len(bars) == 0 {
		return nil
	}
	chart, err := pterm.DefaultBarChart.WithBars(bars).WithHorizontal().WithShowValue().Srender()
	if err != nil {
		return errors.Wrap(err, "render chart")
	}
	fmt.Fprintln(w, chart)
	return nil
}
