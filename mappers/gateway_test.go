package mappers

import (
	"testing"

	"github.com/campusledger/fees.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitMapGatewayStateToAttemptStatus(t *testing.T) {
	Convey("Successful gateway state maps to success", t, func() {
		So(MapGatewayStateToAttemptStatus(models.State{Status: "success", Finished: true}), ShouldEqual, models.AttemptSuccess)
	})

	Convey("Failed gateway states map to failed", t, func() {
		So(MapGatewayStateToAttemptStatus(models.State{Status: "failed", Finished: true}), ShouldEqual, models.AttemptFailed)
		So(MapGatewayStateToAttemptStatus(models.State{Status: "cancelled", Finished: true}), ShouldEqual, models.AttemptFailed)
		So(MapGatewayStateToAttemptStatus(models.State{Status: "timedout", Finished: true}), ShouldEqual, models.AttemptFailed)
	})

	Convey("Unfinished gateway state stays processing", t, func() {
		So(MapGatewayStateToAttemptStatus(models.State{Status: "submitted"}), ShouldEqual, models.AttemptProcessing)
	})
}

func TestUnitMapToPaymentAttempt(t *testing.T) {
	Convey("Maps gateway response onto a processing attempt", t, func() {
		invoice := models.InvoiceDB{ID: "inv-1", TenantID: "tenant-1", StudentID: "student-1"}
		response := models.IncomingGatewayResponse{
			TransactionID: "gw-tx-1",
			Links: models.GatewayLinks{
				NextURL: models.Link{HREF: "https://gateway.example/pay/gw-tx-1", Method: "GET"},
			},
		}

		attempt := MapToPaymentAttempt("pa-1", invoice, 500000, response)

		So(attempt.ID, ShouldEqual, "pa-1")
		So(attempt.TenantID, ShouldEqual, "tenant-1")
		So(attempt.InvoiceID, ShouldEqual, "inv-1")
		So(attempt.StudentID, ShouldEqual, "student-1")
		So(attempt.Amount, ShouldEqual, 500000)
		So(attempt.GatewayTransactionID, ShouldEqual, "gw-tx-1")
		So(attempt.NextURL, ShouldEqual, "https://gateway.example/pay/gw-tx-1")
		So(attempt.Status, ShouldEqual, models.AttemptProcessing)
	})
}
