package qcircuit

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/theapemachine/errnie"
)

// ReadoutMode selects how ReadOut extracts information from the register.
type ReadoutMode string

const (
	// ReadoutQuantum returns the raw amplitudes without touching the state.
	ReadoutQuantum ReadoutMode = "quantum"
	// ReadoutClassical samples one outcome and stores it in the classical bits.
	ReadoutClassical ReadoutMode = "classical"
)

// ParseReadoutMode accepts exactly "quantum" or "classical".
func ParseReadoutMode(mode string) (ReadoutMode, error) {
	switch ReadoutMode(mode) {
	case ReadoutQuantum, ReadoutClassical:
		return ReadoutMode(mode), nil
	}
	return "", errors.WithHint(
		errors.Wrapf(ErrInvalidReadoutMode, "%q", mode),
		`readout mode is either "quantum" or "classical"`,
	)
}

/*
Circuit ties a quantum register to a classical one and runs instructions
against them.
*/
type Circuit struct {
	name  string
	state *QuantumState
	bits  ClassicalBits
}

func NewCircuit(state *QuantumState, bits ClassicalBits) *Circuit {
	return &Circuit{
		name:  "genericCircuit",
		state: state,
		bits:  bits,
	}
}

func (c *Circuit) Name() string {
	return c.name
}

func (c *Circuit) SetName(name string) {
	c.name = name
}

func (c *Circuit) State() *QuantumState {
	return c.state
}

func (c *Circuit) Bits() ClassicalBits {
	return c.bits
}

// Run compiles the instructions into one operator and applies it.
func (c *Circuit) Run(instructions ...Instruction) error {
	if err := c.state.ApplyInstructions(c.bits, instructions...); err != nil {
		return errors.Wrapf(err, "circuit %s", c.name)
	}
	return nil
}

/*
ReadOut extracts the register contents. "quantum" returns a copy of the
amplitudes. "classical" draws a single joint sample and writes it into the
classical bits, returning nil amplitudes.
*/
func (c *Circuit) ReadOut(mode string) ([]complex128, error) {
	m, err := ParseReadoutMode(mode)
	if err != nil {
		return nil, err
	}

	if m == ReadoutQuantum {
		return c.state.Amplitudes(), nil
	}

	outcome, err := c.state.MeasureSample()
	if err != nil {
		return nil, err
	}
	if err := c.writeOutcome(outcome); err != nil {
		return nil, err
	}
	return nil, nil
}

func (c *Circuit) writeOutcome(outcome string) error {
	if c.bits == nil {
		return errors.Wrap(ErrIndexOutOfRange, "classical readout without a classical register")
	}
	values := OutcomeBits(outcome)
	if len(values) != c.bits.Len() {
		return errors.Wrapf(
			ErrDimensionMismatch,
			"%d measured qubits for %d classical bits", len(values), c.bits.Len(),
		)
	}
	return c.bits.Set(values)
}

/*
Statistics performs shots classical readouts of the current state and returns
the outcome of each. Since readout does not collapse the state, every shot
samples the same distribution.
*/
func (c *Circuit) Statistics(shots int) ([]string, error) {
	if shots < 0 {
		return nil, errors.Newf("negative shot count %d", shots)
	}

	stats := make([]string, 0, shots)
	for i := 0; i < shots; i++ {
		if _, err := c.ReadOut(string(ReadoutClassical)); err != nil {
			return nil, errors.Wrapf(err, "shot %d", i)
		}
		stats = append(stats, bitString(c.bits))
	}

	errnie.Info("Statistics - circuit %s, shots %d", c.name, shots)
	return stats, nil
}

// Count is the number of times an outcome was observed.
type Count struct {
	Outcome string
	Count   int
}

// Counts tallies outcomes, sorted by outcome.
func Counts(outcomes []string) []Count {
	tally := make(map[string]int)
	for _, o := range outcomes {
		tally[o]++
	}

	out := make([]Count, 0, len(tally))
	for outcome, n := range tally {
		out = append(out, Count{Outcome: outcome, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Outcome < out[j].Outcome
	})
	return out
}

// OutcomeBits converts a measured bit string into 0/1 values.
func OutcomeBits(outcome string) []int {
	values := make([]int, len(outcome))
	for i, ch := range []byte(outcome) {
		if ch == '1' {
			values[i] = 1
		}
	}
	return values
}

func bitString(bits ClassicalBits) string {
	out := make([]byte, bits.Len())
	for i := range out {
		// indices are in range by construction
		v, _ := bits.Bit(i)
		out[i] = byte('0' + v)
	}
	return string(out)
}
