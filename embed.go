package qcircuit

import "github.com/cockroachdb/errors"

// tensor builds factors[0] ⊗ factors[1] ⊗ … ⊗ factors[n-1]. Position 0 ends
// up as the most significant bit of the basis index.
func tensor(factors []Matrix2) *Operator {
	op := operatorFromMatrix2(factors[0])
	for _, f := range factors[1:] {
		op = kron(op, operatorFromMatrix2(f))
	}
	return op
}

func checkQubitCount(n int) error {
	if n <= 0 || n > MaxQubits {
		return errors.Wrapf(ErrInvalidRegisterSize, "%d qubits, want 1..%d", n, MaxQubits)
	}
	return nil
}

func identityFactors(n int) []Matrix2 {
	factors := make([]Matrix2, n)
	for i := range factors {
		factors[i] = identity2
	}
	return factors
}

/*
EmbedSingle lifts a single-qubit gate onto an n-qubit register, placing m at
position qubit and the identity everywhere else.
*/
func EmbedSingle(m Matrix2, n, qubit int) (*Operator, error) {
	if err := checkQubitCount(n); err != nil {
		return nil, err
	}
	if qubit < 0 || qubit >= n {
		return nil, outOfRange("qubit", qubit, n)
	}

	factors := identityFactors(n)
	factors[qubit] = m
	return tensor(factors), nil
}

/*
EmbedControlled lifts a controlled single-qubit gate onto an n-qubit register:

	(P0 at control) + (P1 at control, m at target)

with the identity on every other position. The result is unitary whenever m is.
*/
func EmbedControlled(m Matrix2, n, control, target int) (*Operator, error) {
	if err := checkQubitCount(n); err != nil {
		return nil, err
	}
	if control < 0 || control >= n {
		return nil, outOfRange("control", control, n)
	}
	if target < 0 || target >= n {
		return nil, outOfRange("target", target, n)
	}
	if control == target {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "control and target are both %d", control)
	}

	idle := identityFactors(n)
	idle[control] = project0

	active := identityFactors(n)
	active[control] = project1
	active[target] = m

	return tensor(idle).Add(tensor(active))
}
