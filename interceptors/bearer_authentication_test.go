package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/golang-jwt/jwt/v5"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitBearerAuthenticationIntercept(t *testing.T) {
	interceptor := BearerAuthenticationInterceptor{Secret: testSecret}

	Convey("No authorization header", t, func() {
		req := httptest.NewRequest("GET", "/invoices", nil)
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Token signed with another secret", t, func() {
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS256, []byte("other"), validClaims(models.RoleStudent)))
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Token signed with an unexpected algorithm", t, func() {
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS512, testSecret, validClaims(models.RoleStudent)))
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Expired token", t, func() {
		claims := validClaims(models.RoleStudent)
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS256, testSecret, claims))
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Token without a tenant", t, func() {
		claims := validClaims(models.RoleStudent)
		claims.TenantID = ""
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS256, testSecret, claims))
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Token with an unknown role", t, func() {
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS256, testSecret, validClaims("parent")))
		w := httptest.NewRecorder()

		interceptor.BearerAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Valid token puts the caller and user details in context", t, func() {
		req := httptest.NewRequest("GET", "/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(jwt.SigningMethodHS256, testSecret, validClaims(models.RoleStudent)))
		w := httptest.NewRecorder()

		var caller models.Caller
		var userDetails authentication.AuthUserDetails
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, _ = helpers.GetCaller(r)
			userDetails, _ = r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
			w.WriteHeader(http.StatusOK)
		})

		interceptor.BearerAuthenticationIntercept(handler).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(caller.TenantID, ShouldEqual, "tenant-1")
		So(caller.UserID, ShouldEqual, "student-1")
		So(caller.Role, ShouldEqual, models.RoleStudent)
		So(userDetails.ID, ShouldEqual, "student-1")
		So(userDetails.Email, ShouldEqual, "student@school.example")
	})
}

func TestUnitAdminAuthenticationIntercept(t *testing.T) {
	Convey("No caller in context", t, func() {
		req := httptest.NewRequest("GET", "/disputes", nil)
		w := httptest.NewRecorder()

		AdminAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Student is forbidden", t, func() {
		req := withCaller(httptest.NewRequest("GET", "/disputes", nil), models.Caller{TenantID: "tenant-1", UserID: "student-1", Role: models.RoleStudent})
		w := httptest.NewRecorder()

		AdminAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Admin is allowed", t, func() {
		req := withCaller(httptest.NewRequest("GET", "/disputes", nil), models.Caller{TenantID: "tenant-1", UserID: "admin-1", Role: models.RoleAdmin})
		w := httptest.NewRecorder()

		AdminAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}
