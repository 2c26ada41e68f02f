package qcircuit

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

/*
Instruction is one step of a circuit. The set of variants is closed:
SingleGate, ControlledGate and ClassicalControlledGate.
*/
type Instruction interface {
	fmt.Stringer
	instruction()
}

// SingleGate applies a library gate to one qubit.
type SingleGate struct {
	Gate  GateName
	Qubit int
}

// ControlledGate is a CNOT: X on Target when Control is |1⟩.
type ControlledGate struct {
	Control int
	Target  int
}

// ClassicalControlledGate applies Gate to Target only if classical bit Bit is 1.
// The branch is taken at compile time.
type ClassicalControlledGate struct {
	Gate   GateName
	Bit    int
	Target int
}

func (SingleGate) instruction()              {}
func (ControlledGate) instruction()          {}
func (ClassicalControlledGate) instruction() {}

func (g SingleGate) String() string {
	return fmt.Sprintf("%s %d", g.Gate, g.Qubit)
}

func (g ControlledGate) String() string {
	return fmt.Sprintf("cnot %d %d", g.Control, g.Target)
}

func (g ClassicalControlledGate) String() string {
	return fmt.Sprintf("classicalcontrol %d %d %s", g.Bit, g.Target, g.Gate)
}

/*
ParseInstruction reads the text form of an instruction. Tags and gate names
are case insensitive:

	h 0
	cnot 0 1
	classicalcontrol 0 1 x
*/
func ParseInstruction(line string) (Instruction, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.Wrap(ErrUnknownInstruction, "empty instruction")
	}

	tag := strings.ToLower(fields[0])
	args := fields[1:]

	switch tag {
	case "cnot":
		ints, err := parseIndices(line, args, 2)
		if err != nil {
			return nil, err
		}
		return ControlledGate{Control: ints[0], Target: ints[1]}, nil

	case "classicalcontrol":
		if len(args) != 3 {
			return nil, errors.Wrapf(ErrUnknownInstruction, "%q: want classicalcontrol <bit> <target> <gate>", line)
		}
		ints, err := parseIndices(line, args[:2], 2)
		if err != nil {
			return nil, err
		}
		gate, err := ParseGateName(args[2])
		if err != nil {
			return nil, errors.Mark(err, ErrUnknownInstruction)
		}
		return ClassicalControlledGate{Gate: gate, Bit: ints[0], Target: ints[1]}, nil
	}

	gate, err := ParseGateName(fields[0])
	if err != nil {
		return nil, errors.Mark(
			errors.Wrapf(err, "instruction %q", line),
			ErrUnknownInstruction,
		)
	}
	ints, err := parseIndices(line, args, 1)
	if err != nil {
		return nil, err
	}
	return SingleGate{Gate: gate, Qubit: ints[0]}, nil
}

// ParseInstructions parses every line or none of them.
func ParseInstructions(lines []string) ([]Instruction, error) {
	out := make([]Instruction, 0, len(lines))
	for i, line := range lines {
		inst, err := ParseInstruction(line)
		if err != nil {
			return nil, errors.Wrapf(err, "instruction %d", i)
		}
		out = append(out, inst)
	}
	return out, nil
}

func parseIndices(line string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, errors.Wrapf(ErrUnknownInstruction, "%q: want %d index arguments, got %d", line, want, len(args))
	}
	out := make([]int, want)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return nil, errors.Mark(
				errors.Wrapf(err, "%q: bad index %q", line, a),
				ErrUnknownInstruction,
			)
		}
		out[i] = v
	}
	return out, nil
}
