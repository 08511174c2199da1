package transformers

import (
	"fmt"

	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/utils"
)

// DisputeTransformer transforms dispute data between database and rest models
type DisputeTransformer struct{}

// TransformToRest transforms a dispute database model into a dispute rest model
func (dt DisputeTransformer) TransformToRest(dbResource models.DisputeDB) models.DisputeRest {
	return models.DisputeRest{
		ID:                   dbResource.ID,
		InvoiceID:            dbResource.InvoiceID,
		PaymentAttemptID:     dbResource.PaymentAttemptID,
		TransactionReference: dbResource.TransactionReference,
		ClaimedAmount:        utils.FormatAmount(dbResource.ClaimedAmount),
		Note:                 dbResource.Note,
		Status:               dbResource.Status,
		AdminNote:            dbResource.AdminNote,
		ResolvedBy:           dbResource.ResolvedBy,
		ResolvedAt:           optionalTime(dbResource.ResolvedAt),
		CreatedBy:            dbResource.CreatedBy,
		CreatedAt:            dbResource.CreatedAt,
		Links: models.DisputeLinksRest{
			Self:    fmt.Sprintf("/disputes/%s", dbResource.ID),
			Invoice: fmt.Sprintf("/invoices/%s", dbResource.InvoiceID),
		},
	}
}

// TransformListToRest transforms a list of dispute database models into the polled list response
func (dt DisputeTransformer) TransformListToRest(dbResources []models.DisputeDB) models.DisputeListRest {
	disputes := make([]models.DisputeRest, 0, len(dbResources))
	for _, d := range dbResources {
		disputes = append(disputes, dt.TransformToRest(d))
	}
	return models.DisputeListRest{
		Total:    len(disputes),
		Disputes: disputes,
	}
}
