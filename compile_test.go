package qcircuit

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
)

type unsupportedInstruction struct{}

func (unsupportedInstruction) instruction()   {}
func (unsupportedInstruction) String() string { return "toffoli 0 1 2" }

func TestCompile(t *testing.T) {
	Convey("Given an instruction list", t, func() {
		Convey("An empty list should compile to the identity", func() {
			op, err := Compile(2, nil, nil)
			So(err, ShouldBeNil)
			So(op.Equal(identityOperator(4)), ShouldBeTrue)
		})

		Convey("H twice should compile to the identity", func() {
			op, err := Compile(1, nil, []Instruction{
				SingleGate{Gate: H, Qubit: 0},
				SingleGate{Gate: H, Qubit: 0},
			})
			So(err, ShouldBeNil)
			So(op.ApproxEqual(identityOperator(2), 1e-12), ShouldBeTrue)
		})

		Convey("Compiling in batches should match compiling at once", func() {
			h := []Instruction{SingleGate{Gate: H, Qubit: 0}}

			stepwise, _ := NewQuantumState(1)
			op, err := Compile(1, nil, h)
			So(err, ShouldBeNil)
			So(stepwise.Apply(op), ShouldBeNil)
			So(stepwise.Apply(op), ShouldBeNil)

			batched, _ := NewQuantumState(1)
			op, err = Compile(1, nil, append(h, h...))
			So(err, ShouldBeNil)
			So(batched.Apply(op), ShouldBeNil)

			So(approxAmplitudes(stepwise.Amplitudes(), batched.Amplitudes(), 1e-9), ShouldBeTrue)
			So(approxAmplitudes(batched.Amplitudes(), []complex128{1, 0}, 1e-9), ShouldBeTrue)
		})

		Convey("Instructions should apply in list order", func() {
			qs, _ := NewQuantumState(1)
			err := qs.ApplyInstructions(nil,
				SingleGate{Gate: X, Qubit: 0},
				SingleGate{Gate: H, Qubit: 0},
			)
			So(err, ShouldBeNil)

			amps := qs.Amplitudes()
			So(real(amps[0]), ShouldAlmostEqual, 1/math.Sqrt2, 1e-12)
			So(real(amps[1]), ShouldAlmostEqual, -1/math.Sqrt2, 1e-12)
		})

		Convey("A Bell circuit should entangle the two qubits", func() {
			qs, _ := NewQuantumState(2)
			err := qs.ApplyInstructions(nil,
				SingleGate{Gate: H, Qubit: 0},
				ControlledGate{Control: 0, Target: 1},
			)
			So(err, ShouldBeNil)

			probs := qs.Probabilities()
			So(probs[0b00], ShouldAlmostEqual, 0.5, 1e-12)
			So(probs[0b11], ShouldAlmostEqual, 0.5, 1e-12)
			So(probs[0b01], ShouldEqual, 0.0)
			So(probs[0b10], ShouldEqual, 0.0)
		})
	})

	Convey("Given classically controlled gates", t, func() {
		bits, err := NewClassicalRegister(2)
		So(err, ShouldBeNil)
		inst := []Instruction{ClassicalControlledGate{Gate: Y, Bit: 1, Target: 0}}

		Convey("A zero bit should resolve to the identity on the target", func() {
			op, err := Compile(2, bits, inst)
			So(err, ShouldBeNil)

			want, _ := EmbedSingle(gateTable[Id], 2, 0)
			So(op.Equal(want), ShouldBeTrue)
		})

		Convey("A set bit should resolve to the gate on the target", func() {
			So(bits.Flip(1), ShouldBeNil)
			op, err := Compile(2, bits, inst)
			So(err, ShouldBeNil)

			want, _ := EmbedSingle(gateTable[Y], 2, 0)
			So(op.Equal(want), ShouldBeTrue)
		})

		Convey("A bit outside the register should fail", func() {
			_, err := Compile(2, bits, []Instruction{ClassicalControlledGate{Gate: X, Bit: 2, Target: 0}})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("A missing register should fail", func() {
			_, err := Compile(2, nil, inst)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
		})
	})

	Convey("Given instructions that cannot be resolved", t, func() {
		qs := spreadState(2)
		before := qs.Amplitudes()

		Convey("An unknown gate name should be rejected before anything runs", func() {
			_, err := ParseInstructions([]string{"h 0", "Q 0"})
			So(errors.Is(err, ErrUnknownInstruction), ShouldBeTrue)
			So(errors.Is(err, ErrUnknownGate), ShouldBeTrue)
			So(qs.Amplitudes(), ShouldResemble, before)
		})

		Convey("A gate value outside the enumeration should fail atomically", func() {
			err := qs.ApplyInstructions(nil,
				SingleGate{Gate: H, Qubit: 0},
				SingleGate{Gate: GateName(99), Qubit: 1},
			)
			So(errors.Is(err, ErrUnknownInstruction), ShouldBeTrue)
			So(qs.Amplitudes(), ShouldResemble, before)
		})

		Convey("An unsupported instruction variant should fail atomically", func() {
			err := qs.ApplyInstructions(nil, SingleGate{Gate: X, Qubit: 0}, unsupportedInstruction{})
			So(errors.Is(err, ErrUnknownInstruction), ShouldBeTrue)
			So(qs.Amplitudes(), ShouldResemble, before)
		})

		Convey("A target past the register width should fail", func() {
			err := qs.ApplyInstructions(nil, SingleGate{Gate: X, Qubit: 2})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)

			err = qs.ApplyInstructions(nil, ControlledGate{Control: 2, Target: 0})
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(qs.Amplitudes(), ShouldResemble, before)
		})
	})
}
