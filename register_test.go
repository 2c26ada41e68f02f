package qcircuit

import (
	"testing"

	"github.com/cockroachdb/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestClassicalRegister(t *testing.T) {
	Convey("Given a classical register", t, func() {
		bits, err := NewClassicalRegister(3)
		So(err, ShouldBeNil)

		Convey("It should start at zero", func() {
			So(bits.Len(), ShouldEqual, 3)
			So(bits.Values(), ShouldResemble, []int{0, 0, 0})
			So(bits.String(), ShouldEqual, "000")
		})

		Convey("Flip should toggle one bit", func() {
			So(bits.Flip(1), ShouldBeNil)
			So(bits.String(), ShouldEqual, "010")
			So(bits.Flip(1), ShouldBeNil)
			So(bits.String(), ShouldEqual, "000")
		})

		Convey("Set should overwrite every bit", func() {
			So(bits.Set([]int{1, 0, 1}), ShouldBeNil)
			b, err := bits.Bit(2)
			So(err, ShouldBeNil)
			So(b, ShouldEqual, 1)
			So(bits.String(), ShouldEqual, "101")
		})

		Convey("Set should reject bad input and keep the old bits", func() {
			So(bits.Set([]int{1, 1}), ShouldNotBeNil)
			So(bits.Set([]int{1, 2, 0}), ShouldNotBeNil)
			So(bits.String(), ShouldEqual, "000")
		})

		Convey("Indices outside the register should fail", func() {
			_, err := bits.Bit(3)
			So(errors.Is(err, ErrIndexOutOfRange), ShouldBeTrue)
			So(errors.Is(bits.Flip(-1), ErrIndexOutOfRange), ShouldBeTrue)
		})

		Convey("Values should be a copy", func() {
			values := bits.Values()
			values[0] = 1
			So(bits.String(), ShouldEqual, "000")
		})
	})

	Convey("Given an empty register size", t, func() {
		_, err := NewClassicalRegister(0)
		So(errors.Is(err, ErrInvalidRegisterSize), ShouldBeTrue)
	})
}
