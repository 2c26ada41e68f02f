package qcircuit

import (
	"math/cmplx"
)

func approxAmplitudes(a, b []complex128, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if cmplx.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func probabilitySum(qs *QuantumState) float64 {
	total := 0.0
	for _, p := range qs.Probabilities() {
		total += p
	}
	return total
}

// spreadState returns an n-qubit state with non-zero, complex amplitudes on
// every basis index.
func spreadState(n int) *QuantumState {
	qs, err := NewQuantumState(n)
	if err != nil {
		panic(err)
	}
	instructions := make([]Instruction, 0, 2*n)
	for q := 0; q < n; q++ {
		instructions = append(instructions, SingleGate{Gate: H, Qubit: q})
	}
	instructions = append(instructions, SingleGate{Gate: T, Qubit: 0})
	if n > 1 {
		instructions = append(instructions, ControlledGate{Control: 0, Target: n - 1})
	}
	if err := qs.ApplyInstructions(nil, instructions...); err != nil {
		panic(err)
	}
	return qs
}
