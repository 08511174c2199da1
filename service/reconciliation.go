package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/campusledger/fees.api/config"
	"github.com/campusledger/fees.api/dao"
	"github.com/campusledger/fees.api/models"
	"github.com/campusledger/fees.api/transformers"
	"github.com/campusledger/fees.api/utils"
	"github.com/companieshouse/chs.go/log"
	"golang.org/x/sync/errgroup"
)

// DateLayout is the layout of the dates accepted and returned by the collections report
const DateLayout = "2006-01-02"

// ReconciliationService finds payment attempts that never completed and reports fee collections
type ReconciliationService struct {
	DAO     dao.DAO
	Config  config.Config
	Gateway PaymentProviderService

	// InvoicePaid is called for every invoice a reconciliation marks paid
	InvoicePaid func(attempt models.PaymentAttemptDB) error
}

// FindStuckAttempts returns the attempts still processing and created strictly before now minus the
// stuck threshold. An empty tenantID searches across every tenant.
func (service *ReconciliationService) FindStuckAttempts(tenantID string) ([]models.PaymentAttemptDB, error) {
	cutoff := now().Add(-service.Config.StuckPaymentThreshold())
	return service.DAO.GetStuckPaymentAttempts(tenantID, cutoff)
}

// GetStuckPayments lists the stuck payment attempts of a tenant
func (service *ReconciliationService) GetStuckPayments(req *http.Request, tenantID string) (*models.StuckPaymentsRest, ResponseType, error) {
	attempts, err := service.FindStuckAttempts(tenantID)
	if err != nil {
		err = fmt.Errorf("error getting stuck payment attempts from database: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	stuck := models.StuckPaymentsRest{
		ThresholdMinutes: service.Config.StuckPaymentThresholdMins,
		Payments:         make([]models.PaymentAttemptRest, 0, len(attempts)),
	}
	for _, attempt := range attempts {
		stuck.Payments = append(stuck.Payments, transformers.PaymentAttemptTransformer{}.TransformToRest(attempt))
	}
	stuck.Total = len(stuck.Payments)

	return &stuck, Success, nil
}

// GetDailyCollections sums the successful payments of a tenant per day between from and to inclusive
func (service *ReconciliationService) GetDailyCollections(req *http.Request, tenantID string, from, to time.Time) (*models.DailyCollectionsRest, ResponseType, error) {
	from = truncateToDay(from)
	to = truncateToDay(to)
	if to.Before(from) {
		return nil, InvalidData, fmt.Errorf("collections range end [%s] is before start [%s]", to.Format(DateLayout), from.Format(DateLayout))
	}

	days, err := service.DAO.GetDailyCollections(tenantID, from, to.AddDate(0, 0, 1))
	if err != nil {
		err = fmt.Errorf("error aggregating daily collections: [%v]", err)
		log.ErrorR(req, err)
		return nil, Error, err
	}

	collections := models.DailyCollectionsRest{
		From: from.Format(DateLayout),
		To:   to.Format(DateLayout),
		Days: make([]models.DailyCollectionRest, 0, len(days)),
	}
	var grandTotal int64
	for _, day := range days {
		grandTotal += day.Total
		collections.Days = append(collections.Days, models.DailyCollectionRest{
			Date:  day.Day,
			Total: utils.FormatAmount(day.Total),
			Count: day.Count,
		})
	}
	collections.GrandTotal = utils.FormatAmount(grandTotal)

	return &collections, Success, nil
}

// ReconcileAttempts asks the gateway for the real state of each attempt and makes the finished ones
// terminal. Gateway errors on one attempt are logged and do not stop the others. It returns how many
// attempts were settled.
func (service *ReconciliationService) ReconcileAttempts(ctx context.Context, attempts []models.PaymentAttemptDB) (int, error) {
	var settled atomic.Int64

	workers := service.Config.GatewayReconcileWorkers
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range attempts {
		attempt := attempts[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			ok, err := service.reconcileAttempt(&attempt)
			if err != nil {
				log.Error(err, log.Data{"attempt_id": attempt.ID, "tenant_id": attempt.TenantID})
				return nil
			}
			if ok {
				settled.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	return int(settled.Load()), err
}

func (service *ReconciliationService) reconcileAttempt(attempt *models.PaymentAttemptDB) (bool, error) {
	statusResponse, _, err := service.Gateway.CheckTransactionStatus(attempt.GatewayTransactionID)
	if err != nil {
		return false, fmt.Errorf("error getting transaction status from gateway: [%v]", err)
	}
	if statusResponse.Status == models.AttemptProcessing {
		return false, nil
	}

	paid, err := settleAttempt(service.DAO, attempt, statusResponse.Status, models.PaidViaReconcile)
	if errors.Is(err, dao.ErrAttemptNotProcessing) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error settling payment attempt: [%v]", err)
	}

	log.Info("payment attempt reconciled with gateway", log.Data{"attempt_id": attempt.ID, "status": attempt.Status, "invoice_paid": paid})

	if paid && service.InvoicePaid != nil {
		if err := service.InvoicePaid(*attempt); err != nil {
			log.Error(fmt.Errorf("error notifying invoice paid: [%v]", err), log.Data{"invoice_id": attempt.InvoiceID})
		}
	}
	return true, nil
}

func truncateToDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
