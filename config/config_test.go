package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGet(t *testing.T) {

	Convey("Config already defined", t, func() {
		cfg = DefaultConfig()
		config, err := Get()
		So(config, ShouldResemble, DefaultConfig())
		So(err, ShouldBeNil)
	})

	Convey("Successful get config", t, func() {
		cfg = nil // reset after previous tests
		config, err := Get()
		So(config, ShouldResemble, DefaultConfig())
		So(err, ShouldBeNil)
	})

}

func TestUnitDurations(t *testing.T) {

	Convey("Stuck payment durations derive from defaults", t, func() {
		c := DefaultConfig()
		So(c.StuckPaymentThreshold(), ShouldEqual, time.Hour)
		So(c.StuckPaymentPollInterval(), ShouldEqual, time.Minute)
	})

	Convey("Zero poll interval disables the monitor", t, func() {
		c := DefaultConfig()
		c.StuckPaymentPollSeconds = 0
		So(c.StuckPaymentPollInterval(), ShouldEqual, time.Duration(0))
	})
}
