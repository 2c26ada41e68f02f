package qcircuit

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
ClassicalBits is the classical storage the simulator reads during
classical control and writes after a classical readout.
*/
type ClassicalBits interface {
	Len() int
	Bit(index int) (int, error)
	Set(values []int) error
	Flip(index int) error
}

// ClassicalRegister is a fixed-length vector of 0/1 values.
type ClassicalRegister struct {
	values []int
}

// NewClassicalRegister returns n bits, all zero.
func NewClassicalRegister(n int) (*ClassicalRegister, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidRegisterSize, "%d classical bits", n)
	}
	return &ClassicalRegister{values: make([]int, n)}, nil
}

func (r *ClassicalRegister) Len() int {
	return len(r.values)
}

func (r *ClassicalRegister) Bit(index int) (int, error) {
	if index < 0 || index >= len(r.values) {
		return 0, outOfRange("classical bit", index, len(r.values))
	}
	return r.values[index], nil
}

// Set overwrites every bit. values must match the register length.
func (r *ClassicalRegister) Set(values []int) error {
	if len(values) != len(r.values) {
		return errors.Wrapf(ErrDimensionMismatch, "%d values for %d classical bits", len(values), len(r.values))
	}
	for i, v := range values {
		if v != 0 && v != 1 {
			return errors.Newf("classical bit %d: value %d is not 0 or 1", i, v)
		}
	}
	copy(r.values, values)
	return nil
}

func (r *ClassicalRegister) Flip(index int) error {
	if index < 0 || index >= len(r.values) {
		return outOfRange("classical bit", index, len(r.values))
	}
	r.values[index] ^= 1
	return nil
}

// Values returns a copy of the bits.
func (r *ClassicalRegister) Values() []int {
	out := make([]int, len(r.values))
	copy(out, r.values)
	return out
}

// String renders the bits most significant first, e.g. "0110".
func (r *ClassicalRegister) String() string {
	var b strings.Builder
	for _, v := range r.values {
		b.WriteString(strconv.Itoa(v))
	}
	return b.String()
}
