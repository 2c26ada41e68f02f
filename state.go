package qcircuit

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/cockroachdb/errors"
	"github.com/theapemachine/errnie"
)

/*
QuantumState holds the amplitude vector of an n-qubit register. Basis index i
reads as a bit string with qubit 0 as its most significant bit.

A QuantumState is owned by one caller at a time; it does no locking.
*/
type QuantumState struct {
	nQubits    int
	amplitudes []complex128
	rng        *rand.Rand
	tolerance  float64
	metrics    *Metrics
}

// StateOption configures a QuantumState at construction.
type StateOption func(*QuantumState)

// WithSource draws measurement samples from src instead of the process-wide source.
func WithSource(src rand.Source) StateOption {
	return func(qs *QuantumState) {
		qs.rng = rand.New(src)
	}
}

// WithTolerance sets the normalization tolerance used by MeasureSample.
func WithTolerance(tolerance float64) StateOption {
	return func(qs *QuantumState) {
		qs.tolerance = tolerance
	}
}

func WithMetrics(metrics *Metrics) StateOption {
	return func(qs *QuantumState) {
		qs.metrics = metrics
	}
}

// WithConfig applies the tolerance and seed from cfg.
func WithConfig(cfg *Config) StateOption {
	return func(qs *QuantumState) {
		if cfg.Tolerance > 0 {
			qs.tolerance = cfg.Tolerance
		}
		if cfg.Seed != 0 {
			qs.rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
		}
	}
}

// NewQuantumState returns an n-qubit register in the ground state |0…0⟩.
func NewQuantumState(nQubits int, opts ...StateOption) (*QuantumState, error) {
	if err := checkQubitCount(nQubits); err != nil {
		return nil, err
	}

	qs := &QuantumState{
		nQubits:    nQubits,
		amplitudes: make([]complex128, 1<<nQubits),
		tolerance:  DefaultTolerance,
	}
	qs.amplitudes[0] = 1

	for _, opt := range opts {
		opt(qs)
	}

	errnie.Info("NewQuantumState - qubits %d, tolerance %g", nQubits, qs.tolerance)
	return qs, nil
}

func (qs *QuantumState) NumQubits() int {
	return qs.nQubits
}

// Dim returns the number of basis states, 2^n.
func (qs *QuantumState) Dim() int {
	return len(qs.amplitudes)
}

// Amplitudes returns a copy of the amplitude vector.
func (qs *QuantumState) Amplitudes() []complex128 {
	out := make([]complex128, len(qs.amplitudes))
	copy(out, qs.amplitudes)
	return out
}

// Probabilities returns |amplitude_i|² for every basis index.
func (qs *QuantumState) Probabilities() []float64 {
	probs := make([]float64, len(qs.amplitudes))
	for i, amplitude := range qs.amplitudes {
		prob := cmplx.Abs(amplitude)
		probs[i] = prob * prob
	}
	return probs
}

// Apply evolves the state by op, as the row-vector product state·op.
func (qs *QuantumState) Apply(op *Operator) error {
	if op == nil || op.Dim() != len(qs.amplitudes) {
		dim := 0
		if op != nil {
			dim = op.Dim()
		}
		return errors.Wrapf(ErrDimensionMismatch, "operator dimension %d, state dimension %d", dim, len(qs.amplitudes))
	}

	qs.amplitudes = op.applyRow(qs.amplitudes)
	qs.metrics.recordApply()
	return nil
}

/*
ApplyInstructions compiles instructions into one operator and applies it. If
any instruction fails to resolve the state is left untouched.
*/
func (qs *QuantumState) ApplyInstructions(bits ClassicalBits, instructions ...Instruction) error {
	op, err := compile(qs.nQubits, bits, instructions, qs.metrics)
	if err != nil {
		return err
	}
	return qs.Apply(op)
}

func (qs *QuantumState) ApplySingleGate(gate GateName, qubit int) error {
	return qs.ApplyInstructions(nil, SingleGate{Gate: gate, Qubit: qubit})
}

func (qs *QuantumState) ApplyControlledGate(control, target int) error {
	return qs.ApplyInstructions(nil, ControlledGate{Control: control, Target: target})
}

/*
MeasureSample draws one basis state from the outcome distribution and returns
it as an n-character bit string, qubit 0 first. The amplitudes are not
collapsed, so repeated calls sample the same distribution.
*/
func (qs *QuantumState) MeasureSample() (string, error) {
	probs := qs.Probabilities()

	total := 0.0
	for _, p := range probs {
		total += p
	}
	if math.Abs(total-1) > qs.tolerance {
		return "", errors.Wrapf(ErrProbabilityNormalization, "total probability %g, tolerance %g", total, qs.tolerance)
	}

	index := qs.choose(probs, total)
	qs.metrics.recordSample()

	return fmt.Sprintf("%0*b", qs.nQubits, index), nil
}

// choose is a weighted categorical draw over probs.
func (qs *QuantumState) choose(probs []float64, total float64) int {
	r := qs.draw() * total

	last := 0
	cumulative := 0.0
	for i, p := range probs {
		if p == 0 {
			continue
		}
		cumulative += p
		last = i
		if r < cumulative {
			return i
		}
	}
	// rounding left r at or past the final cumulative value
	return last
}

func (qs *QuantumState) draw() float64 {
	if qs.rng != nil {
		return qs.rng.Float64()
	}
	return rand.Float64()
}

/*
Clone returns an independent snapshot. A seeded source is forked by drawing a
new seed from it, so the clone is reproducible but does not replay the
original's samples.
*/
func (qs *QuantumState) Clone() *QuantumState {
	clone := &QuantumState{
		nQubits:    qs.nQubits,
		amplitudes: qs.Amplitudes(),
		tolerance:  qs.tolerance,
		metrics:    qs.metrics,
	}
	if qs.rng != nil {
		clone.rng = rand.New(rand.NewPCG(qs.rng.Uint64(), qs.rng.Uint64()))
	}
	return clone
}

// FormatAmplitudes returns the amplitudes rounded to the given number of decimals.
func (qs *QuantumState) FormatAmplitudes(decimals int) []complex128 {
	scale := math.Pow(10, float64(decimals))
	out := make([]complex128, len(qs.amplitudes))
	for i, a := range qs.amplitudes {
		out[i] = complex(
			math.Round(real(a)*scale)/scale,
			math.Round(imag(a)*scale)/scale,
		)
	}
	return out
}
