package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/fixtures"
	"github.com/campusledger/fees.api/models"
	"github.com/golang/mock/gomock"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitHandleCreateInvoice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	admin := fixtures.GetAdminCaller()

	Convey("Unknown fields are rejected", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), nil)
		w := httptest.NewRecorder()
		body := `{"student_id":"student-1","description":"Term 1","academic_year":"2025/2026","total_amount":"5000.00","due_date":"2025-09-30T00:00:00Z","discount":"10"}`
		router.ServeHTTP(w, newAuthorisedRequest("POST", "/invoices", body, admin))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Zero total", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), nil)
		w := httptest.NewRecorder()
		body := `{"student_id":"student-1","description":"Term 1","academic_year":"2025/2026","total_amount":"0.00","due_date":"2025-09-30T00:00:00Z"}`
		router.ServeHTTP(w, newAuthorisedRequest("POST", "/invoices", body, admin))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Invoice created", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDao, nil)
		mockDao.EXPECT().CreateInvoice(gomock.Any()).DoAndReturn(func(invoice *models.InvoiceDB) error {
			So(invoice.TenantID, ShouldEqual, fixtures.TenantID)
			So(invoice.TotalAmount, ShouldEqual, 500000)
			So(invoice.CreatedBy, ShouldEqual, fixtures.AdminID)
			return nil
		})

		w := httptest.NewRecorder()
		body := `{"student_id":"student-1","description":"Term 1","academic_year":"2025/2026","total_amount":"5000.00","due_date":"2025-09-30T00:00:00Z"}`
		router.ServeHTTP(w, newAuthorisedRequest("POST", "/invoices", body, admin))
		So(w.Code, ShouldEqual, http.StatusCreated)

		var invoice models.InvoiceRest
		So(json.NewDecoder(w.Body).Decode(&invoice), ShouldBeNil)
		So(invoice.Status, ShouldEqual, models.InvoicePending)
		So(invoice.OutstandingAmount, ShouldEqual, "5000.00")
	})
}

func TestUnitHandleGetInvoices(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Students only see their own invoices", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDao, nil)
		mockDao.EXPECT().GetInvoices(fixtures.TenantID, models.InvoiceFilter{StudentID: fixtures.StudentID}).
			Return([]models.InvoiceDB{*fixtures.GetInvoice("inv-1")}, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("GET", "/invoices?student_id=student-2", "", fixtures.GetStudentCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)

		var list models.InvoiceListRest
		So(json.NewDecoder(w.Body).Decode(&list), ShouldBeNil)
		So(list.Total, ShouldEqual, 1)
	})

	Convey("Bad include_archived flag", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("GET", "/invoices?include_archived=maybe", "", fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})

	Convey("Unknown status", t, func() {
		router := newTestRouter(dao.NewMockDAO(mockCtrl), nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("GET", "/invoices?status=refunded", "", fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusBadRequest)
	})
}

func TestUnitHandleGetInvoice(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Admin reads any invoice of the tenant", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDao, nil)
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-1").Return(fixtures.GetInvoice("inv-1"), nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("GET", "/invoices/inv-1", "", fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Invoice of another tenant is not found", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDao, nil)
		mockDao.EXPECT().GetInvoice(fixtures.TenantID, "inv-x").Return(nil, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("GET", "/invoices/inv-x", "", fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusNotFound)
	})
}

func TestUnitHandleArchiveInvoices(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	Convey("Academic year rollover", t, func() {
		mockDao := dao.NewMockDAO(mockCtrl)
		router := newTestRouter(mockDao, nil)
		mockDao.EXPECT().ArchiveInvoices(fixtures.TenantID, "2024/2025").Return(int64(42), nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, newAuthorisedRequest("POST", "/invoices/archive", `{"academic_year":"2024/2025"}`, fixtures.GetAdminCaller()))
		So(w.Code, ShouldEqual, http.StatusOK)

		var archived models.ArchiveInvoicesResponse
		So(json.NewDecoder(w.Body).Decode(&archived), ShouldBeNil)
		So(archived.Archived, ShouldEqual, 42)
	})
}
