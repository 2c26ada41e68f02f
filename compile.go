package qcircuit

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/theapemachine/errnie"
)

/*
Compile resolves instructions against an n-qubit register and folds them into
a single operator Op1·Op2·…·Opk. States are row vectors (state' = state·U), so
Op1 acts first. bits is only consulted by classically controlled gates and may
be nil otherwise.

Compile is all-or-nothing: on error no operator is returned.
*/
func Compile(n int, bits ClassicalBits, instructions []Instruction) (*Operator, error) {
	return compile(n, bits, instructions, nil)
}

func compile(n int, bits ClassicalBits, instructions []Instruction, metrics *Metrics) (*Operator, error) {
	start := time.Now()

	if err := checkQubitCount(n); err != nil {
		return nil, err
	}

	var composite *Operator
	for i, inst := range instructions {
		op, err := resolve(n, bits, inst)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %d (%v)", i, inst)
		}
		if composite == nil {
			composite = op
			continue
		}
		if composite, err = composite.Mul(op); err != nil {
			return nil, err
		}
	}
	if composite == nil {
		composite = identityOperator(1 << n)
	}

	errnie.Info(
		"compiled %d instructions on %d qubits (non-zeros %d, sparse %v)",
		len(instructions), n, composite.NonZeros(), composite.IsSparse(),
	)
	metrics.recordCompile(start, len(instructions), composite)

	return composite, nil
}

func resolve(n int, bits ClassicalBits, inst Instruction) (*Operator, error) {
	switch inst := inst.(type) {
	case SingleGate:
		m, err := inst.Gate.Matrix()
		if err != nil {
			return nil, errors.Mark(err, ErrUnknownInstruction)
		}
		return EmbedSingle(m, n, inst.Qubit)

	case ControlledGate:
		return EmbedControlled(gateTable[X], n, inst.Control, inst.Target)

	case ClassicalControlledGate:
		m, err := inst.Gate.Matrix()
		if err != nil {
			return nil, errors.Mark(err, ErrUnknownInstruction)
		}
		if bits == nil {
			return nil, errors.Wrap(ErrIndexOutOfRange, "classical control without a classical register")
		}
		bit, err := bits.Bit(inst.Bit)
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			m = identity2
		}
		return EmbedSingle(m, n, inst.Target)
	}

	return nil, errors.Wrapf(ErrUnknownInstruction, "%T", inst)
}
