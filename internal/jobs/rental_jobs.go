package jobs

import (
	"context"

	"rentwheels-backend/internal/logger"
)

// CompleteExpiredRentals moves active rentals whose end date has passed to
// completed. Safe to run concurrently with itself or with user actions: a
// rental that changed in the meantime is counted as processed but not
// successful.
func (jr *JobRunner) CompleteExpiredRentals() {
	jr.runWithRecovery("CompleteExpiredRentals", func(ctx context.Context) {
		res, err := jr.services.Rental.CompleteExpiredRentals(ctx)
		if err != nil {
			logger.Error("Failed to complete expired rentals", "error", err)
			return
		}
		if failed := res.Processed - res.Success; failed > 0 {
			logger.Warn("Some expired rentals were not completed", "failed", failed)
		}
		logger.Info("Completed expired rentals", "processed", res.Processed, "success", res.Success)
	})
}
