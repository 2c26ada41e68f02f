package qcircuit

import (
	"math"
	"math/cmplx"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// GateName identifies one of the single-qubit gates in the library.
type GateName int

const (
	X GateName = iota
	Y
	Z
	H
	Id
	S
	SDagger
	T
	TDagger

	gateCount
)

var gateNames = [gateCount]string{
	X:       "X",
	Y:       "Y",
	Z:       "Z",
	H:       "H",
	Id:      "Id",
	S:       "S",
	SDagger: "SDagger",
	T:       "T",
	TDagger: "TDagger",
}

// Matrix2 is a 2x2 complex matrix, indexed [row][column].
type Matrix2 [2][2]complex128

// Dagger returns the conjugate transpose.
func (m Matrix2) Dagger() Matrix2 {
	return Matrix2{
		{cmplx.Conj(m[0][0]), cmplx.Conj(m[1][0])},
		{cmplx.Conj(m[0][1]), cmplx.Conj(m[1][1])},
	}
}

// Mul returns the matrix product m·o.
func (m Matrix2) Mul(o Matrix2) Matrix2 {
	var out Matrix2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			out[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j]
		}
	}
	return out
}

var (
	identity2 = Matrix2{{1, 0}, {0, 1}}

	// projectors |0⟩⟨0| and |1⟩⟨1|
	project0 = Matrix2{{1, 0}, {0, 0}}
	project1 = Matrix2{{0, 0}, {0, 1}}
)

// gateTable is filled once at package init and only ever handed out by value.
var gateTable = func() [gateCount]Matrix2 {
	h := complex(1/math.Sqrt2, 0)
	s := Matrix2{{1, 0}, {0, 1i}}
	t := Matrix2{{1, 0}, {0, cmplx.Exp(complex(0, math.Pi/4))}}

	return [gateCount]Matrix2{
		X:       {{0, 1}, {1, 0}},
		Y:       {{0, -1i}, {1i, 0}},
		Z:       {{1, 0}, {0, -1}},
		H:       {{h, h}, {h, -h}},
		Id:      identity2,
		S:       s,
		SDagger: s.Dagger(),
		T:       t,
		TDagger: t.Dagger(),
	}
}()

func (g GateName) valid() bool {
	return g >= 0 && g < gateCount
}

func (g GateName) String() string {
	if !g.valid() {
		return "GateName(" + strconv.Itoa(int(g)) + ")"
	}
	return gateNames[g]
}

// Matrix returns the unitary bound to g.
func (g GateName) Matrix() (Matrix2, error) {
	if !g.valid() {
		return Matrix2{}, errors.Wrapf(ErrUnknownGate, "%s", g)
	}
	return gateTable[g], nil
}

// ParseGateName resolves a gate name case-insensitively.
func ParseGateName(name string) (GateName, error) {
	for g, n := range gateNames {
		if strings.EqualFold(n, name) {
			return GateName(g), nil
		}
	}
	return 0, errors.WithHint(
		errors.Wrapf(ErrUnknownGate, "%q", name),
		"allowed gates are X, Y, Z, H, Id, S, SDagger, T, TDagger (case insensitive)",
	)
}

// Lookup returns the matrix for a gate given by name.
func Lookup(name string) (Matrix2, error) {
	g, err := ParseGateName(name)
	if err != nil {
		return Matrix2{}, err
	}
	return gateTable[g], nil
}

// Gates lists the library in declaration order.
func Gates() []GateName {
	out := make([]GateName, 0, gateCount)
	for g := GateName(0); g < gateCount; g++ {
		out = append(out, g)
	}
	return out
}
