package qcircuit

import (
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

/*
Program is a circuit described in YAML:

	name: bell
	qubits: 2
	bits: 2
	instructions:
	  - h 0
	  - cnot 0 1
*/
type Program struct {
	Name         string   `yaml:"name"`
	Qubits       int      `yaml:"qubits"`
	Bits         int      `yaml:"bits"`
	InitialBits  []int    `yaml:"initial_bits"`
	Instructions []string `yaml:"instructions"`
}

// LoadProgram decodes a YAML program from r.
func LoadProgram(r io.Reader) (*Program, error) {
	var p Program
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "decode program")
	}
	if p.Bits == 0 {
		p.Bits = p.Qubits
	}
	return &p, nil
}

/*
Build creates the registers described by the program and parses its
instructions. Nothing is applied yet; call Run on the returned circuit.
*/
func (p *Program) Build(opts ...StateOption) (*Circuit, []Instruction, error) {
	state, err := NewQuantumState(p.Qubits, opts...)
	if err != nil {
		return nil, nil, err
	}
	bits, err := NewClassicalRegister(p.Bits)
	if err != nil {
		return nil, nil, err
	}
	if len(p.InitialBits) > 0 {
		if err := bits.Set(p.InitialBits); err != nil {
			return nil, nil, errors.Wrap(err, "initial_bits")
		}
	}

	instructions, err := ParseInstructions(p.Instructions)
	if err != nil {
		return nil, nil, err
	}

	circuit := NewCircuit(state, bits)
	if p.Name != "" {
		circuit.SetName(p.Name)
	}
	return circuit, instructions, nil
}
