package helpers

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/campusledger/fees.api/models"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGetBearerToken(t *testing.T) {
	Convey("No Authorization header", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		So(GetBearerToken(req), ShouldEqual, "")
	})

	Convey("Non bearer scheme", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		So(GetBearerToken(req), ShouldEqual, "")
	})

	Convey("Bearer scheme is case insensitive", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		req.Header.Set("Authorization", "bearer abc.def.ghi")
		So(GetBearerToken(req), ShouldEqual, "abc.def.ghi")
	})
}

func TestUnitGetCaller(t *testing.T) {
	Convey("Caller missing from context", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		_, ok := GetCaller(req)
		So(ok, ShouldBeFalse)
	})

	Convey("Caller present in context", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		caller := models.Caller{TenantID: "tenant-1", UserID: "admin-1", Role: models.RoleAdmin}
		req = req.WithContext(context.WithValue(req.Context(), ContextKeyCaller, caller))

		got, ok := GetCaller(req)
		So(ok, ShouldBeTrue)
		So(got, ShouldResemble, caller)
		So(got.IsAdmin(), ShouldBeTrue)
	})
}
