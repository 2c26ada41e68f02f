package qcircuit

import "github.com/cockroachdb/errors"

/*
Sentinel errors returned by the simulator. Call sites wrap them with context,
so callers should match with errors.Is rather than comparing directly.
*/
var (
	// ErrInvalidRegisterSize is returned when a register is built with a
	// non-positive (or unaddressable) number of qubits or bits.
	ErrInvalidRegisterSize = errors.New("invalid register size")

	// ErrUnknownGate is returned for a gate name outside the closed library.
	ErrUnknownGate = errors.New("unknown gate")

	// ErrUnknownInstruction is returned when an instruction cannot be resolved.
	ErrUnknownInstruction = errors.New("unknown instruction")

	// ErrIndexOutOfRange covers qubit, control, target and classical bit
	// indices outside their register, and control == target.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrDimensionMismatch is returned when an operator does not match the state size.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrProbabilityNormalization is returned when the outcome distribution
	// does not sum to one within tolerance.
	ErrProbabilityNormalization = errors.New("probabilities are not normalized")

	// ErrInvalidReadoutMode is returned for a readout mode other than
	// "quantum" or "classical".
	ErrInvalidReadoutMode = errors.New("invalid readout mode")
)

func outOfRange(kind string, index, size int) error {
	return errors.Wrapf(ErrIndexOutOfRange, "%s index %d outside [0,%d)", kind, index, size)
}
