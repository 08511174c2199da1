package utils

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

type amountRequest struct {
	Amount string `validate:"required,amount"`
}

type noteRequest struct {
	Note string `validate:"required,notblank"`
}

func TestUnitParseAmount(t *testing.T) {
	Convey("Whole amount", t, func() {
		amount, err := ParseAmount("5000")
		So(err, ShouldBeNil)
		So(amount, ShouldEqual, 500000)
	})

	Convey("Amount with pence", t, func() {
		amount, err := ParseAmount("30.05")
		So(err, ShouldBeNil)
		So(amount, ShouldEqual, 3005)
	})

	Convey("Amount with one decimal place", t, func() {
		amount, err := ParseAmount("12.5")
		So(err, ShouldBeNil)
		So(amount, ShouldEqual, 1250)
	})

	Convey("Too many decimal places", t, func() {
		_, err := ParseAmount("250.567")
		So(err.Error(), ShouldEqual, "amount [250.567] format incorrect")
	})

	Convey("Largest representable amount", t, func() {
		amount, err := ParseAmount("92233720368547758.07")
		So(err, ShouldBeNil)
		So(amount, ShouldEqual, int64(9223372036854775807))
	})

	Convey("Amounts beyond the minor unit range are rejected rather than wrapped", t, func() {
		for _, s := range []string{"92233720368547758.08", "184467440737095516.16", "99999999999999999999"} {
			amount, err := ParseAmount(s)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldEqual, "amount ["+s+"] out of range")
			So(amount, ShouldEqual, 0)
		}
	})

	Convey("Negative amount", t, func() {
		_, err := ParseAmount("-10.00")
		So(err, ShouldNotBeNil)
	})
}

func TestUnitFormatAmount(t *testing.T) {
	Convey("Minor units are formatted to two places", t, func() {
		So(FormatAmount(500000), ShouldEqual, "5000.00")
		So(FormatAmount(3005), ShouldEqual, "30.05")
		So(FormatAmount(0), ShouldEqual, "0.00")
	})
}

func TestUnitNewValidator(t *testing.T) {
	validate := NewValidator()

	Convey("Valid amount passes", t, func() {
		So(validate.Struct(amountRequest{Amount: "3000.00"}), ShouldBeNil)
	})

	Convey("Invalid amount fails on amount tag", t, func() {
		err := validate.Struct(amountRequest{Amount: "3,000"})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "'amount' tag")
	})

	Convey("Whitespace only note fails on notblank tag", t, func() {
		err := validate.Struct(noteRequest{Note: "  \t\n "})
		So(err, ShouldNotBeNil)
		So(err.Error(), ShouldContainSubstring, "'notblank' tag")
	})

	Convey("Note with text passes", t, func() {
		So(validate.Struct(noteRequest{Note: " Matched against statement "}), ShouldBeNil)
	})
}
