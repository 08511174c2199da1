package interceptors

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/fixtures"
	"github.com/campusledger/fees.api/helpers"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/service"
	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitInvoiceAuthenticationIntercept(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	newRequest := func(caller models.Caller) *http.Request {
		req := httptest.NewRequest("GET", "/invoices/inv-1", nil)
		req = mux.SetURLVars(req, map[string]string{"invoice_id": "inv-1"})
		return withCaller(req, caller)
	}

	Convey("No invoice id in request", t, func() {
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: dao.NewMockDAO(mockCtrl)}}
		req := withCaller(httptest.NewRequest("GET", "/invoices/", nil), fixtures.GetStudentCaller())
		w := httptest.NewRecorder()

		interceptor.InvoiceAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Error retrieving invoice", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: mockDao}}
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(nil, errors.New("error"))
		w := httptest.NewRecorder()

		interceptor.InvoiceAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusInternalServerError)
	})

	Convey("Invoice not in the caller's tenant", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: mockDao}}
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(nil, nil)
		w := httptest.NewRecorder()

		interceptor.InvoiceAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Invoice of another student is forbidden", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: mockDao}}
		invoice := fixtures.GetInvoice("inv-1")
		invoice.StudentID = "student-2"
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(invoice, nil)
		w := httptest.NewRecorder()

		interceptor.InvoiceAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Invoice student gets the invoice in context", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: mockDao}}
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(fixtures.GetInvoice("inv-1"), nil)
		w := httptest.NewRecorder()

		var invoice *models.InvoiceDB
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			invoice, _ = r.Context().Value(helpers.ContextKeyInvoice).(*models.InvoiceDB)
			w.WriteHeader(http.StatusOK)
		})

		interceptor.InvoiceAuthenticationIntercept(handler).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(invoice.ID, ShouldEqual, "inv-1")
	})

	Convey("Admin is allowed any invoice of the tenant", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := InvoiceAuthenticationInterceptor{Service: service.InvoiceService{DAO: mockDao}}
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(fixtures.GetInvoice("inv-1"), nil)
		w := httptest.NewRecorder()

		interceptor.InvoiceAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)
	})
}

func TestUnitDisputeAuthenticationIntercept(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	newRequest := func(caller models.Caller) *http.Request {
		req := httptest.NewRequest("GET", "/disputes/d-1", nil)
		req = mux.SetURLVars(req, map[string]string{"dispute_id": "d-1"})
		return withCaller(req, caller)
	}

	Convey("No caller in context", t, func() {
		interceptor := DisputeAuthenticationInterceptor{Service: service.DisputeService{DAO: dao.NewMockDAO(mockCtrl)}}
		req := mux.SetURLVars(httptest.NewRequest("GET", "/disputes/d-1", nil), map[string]string{"dispute_id": "d-1"})
		w := httptest.NewRecorder()

		interceptor.DisputeAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Dispute not found", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := DisputeAuthenticationInterceptor{Service: service.DisputeService{DAO: mockDao}}
		mockDao.EXPECT().GetDispute(fixtures.TenantID, "d-1").Return(nil, nil)
		w := httptest.NewRecorder()

		interceptor.DisputeAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})

	Convey("Dispute raised by another student is forbidden", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := DisputeAuthenticationInterceptor{Service: service.DisputeService{DAO: mockDao}}
		dispute := fixtures.GetDispute("d-1", "inv-1", "gw-pa-1", 500000)
		dispute.CreatedBy = "student-2"
		mockDao.EXPECT().GetDispute(fixtures.TenantID, "d-1").Return(dispute, nil)
		w := httptest.NewRecorder()

		interceptor.DisputeAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusForbidden)
	})

	Convey("Creator gets the dispute in context", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		interceptor := DisputeAuthenticationInterceptor{Service: service.DisputeService{DAO: mockDao}}
		mockDao.EXPECT().GetDispute(fixtures.TenantID, "d-1").Return(fixtures.GetDispute("d-1", "inv-1", "gw-pa-1", 500000), nil)
		w := httptest.NewRecorder()

		var dispute *models.DisputeDB
		handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			dispute, _ = r.Context().Value(helpers.ContextKeyDispute).(*models.DisputeDB)
			w.WriteHeader(http.StatusOK)
		})

		interceptor.DisputeAuthenticationIntercept(handler).ServeHTTP(w, newRequest(fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)
		So(dispute.ID, ShouldEqual, "d-1")
	})
}
