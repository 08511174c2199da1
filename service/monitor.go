package service

import (
	"context"
	"fmt"
	"time"

	"github.com/companieshouse/chs.go/log"
)

// StuckPaymentMonitor periodically looks for stuck payment attempts across all tenants
type StuckPaymentMonitor struct {
	Service  *ReconciliationService
	Interval time.Duration
}

// Run checks for stuck payments immediately and then on every interval until ctx is cancelled
func (m *StuckPaymentMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.Interval)
	defer ticker.Stop()

	log.Info("stuck payment monitor started", log.Data{"interval": m.Interval.String()})

	for {
		m.check(ctx)

		select {
		case <-ctx.Done():
			log.Info("stuck payment monitor stopped")
			return
		case <-ticker.C:
		}
	}
}

func (m *StuckPaymentMonitor) check(ctx context.Context) {
	stuck, err := m.Service.FindStuckAttempts("")
	if err != nil {
		log.Error(fmt.Errorf("error finding stuck payment attempts: [%v]", err))
		return
	}
	if len(stuck) == 0 {
		return
	}

	tenants := map[string]int{}
	for _, attempt := range stuck {
		tenants[attempt.TenantID]++
	}
	log.Info("stuck payment attempts found", log.Data{"total": len(stuck), "tenants": tenants})

	if !m.Service.Config.GatewayReconcileEnabled {
		return
	}

	settled, err := m.Service.ReconcileAttempts(ctx, stuck)
	if err != nil {
		log.Error(fmt.Errorf("gateway reconciliation interrupted: [%v]", err), log.Data{"settled": settled})
		return
	}
	log.Info("gateway reconciliation complete", log.Data{"checked": len(stuck), "settled": settled})
}
