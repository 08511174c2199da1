package service

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitResponseTypeString(t *testing.T) {
	Convey("Response types have readable names", t, func() {
		So(InvalidData.String(), ShouldEqual, "invalid-data")
		So(Conflict.String(), ShouldEqual, "conflict")
		So(AmountMismatch.String(), ShouldEqual, "amount-mismatch")
		So(AttemptNotFound.String(), ShouldEqual, "attempt-not-found")
	})
}
