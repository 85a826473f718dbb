package jobs

import (
	"context"

	"rentwheels-backend/internal/logger"
)

// ReportPendingProviders logs the provider applications waiting for an
// admin decision.
func (jr *JobRunner) ReportPendingProviders() {
	jr.runWithRecovery("ReportPendingProviders", func(ctx context.Context) {
		providers, err := jr.services.Admin.ListPendingProviders(ctx)
		if err != nil {
			logger.Error("Failed to list pending providers", "error", err)
			return
		}
		if len(providers) == 0 {
			logger.Info("No provider applications pending")
			return
		}

		oldest := providers[0]
		for _, p := range providers[1:] {
			if p.CreatedOn.Before(oldest.CreatedOn) {
				oldest = p
			}
		}
		logger.Warn("Provider applications awaiting review",
			"count", len(providers),
			"oldest_user_id", oldest.ID,
			"oldest_since", oldest.CreatedOn)
	})
}
