package http

import (
	"context"
	"net/http"
	"time"

	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/service"
)

// HealthHandler reports process and database liveness
type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// HandleHealth answers 200 when the database responds within two seconds
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		logger.Warn("Health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "database": "down"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "database": "up"})
}

// JobsHandler exposes scheduled jobs for manual runs
type JobsHandler struct {
	rentalSvc service.RentalService
}

func NewJobsHandler(rentalSvc service.RentalService) *JobsHandler {
	return &JobsHandler{rentalSvc: rentalSvc}
}

// HandleCompleteExpiredRentals runs the expiry sweep synchronously
func (h *JobsHandler) HandleCompleteExpiredRentals(w http.ResponseWriter, r *http.Request) {
	res, err := h.rentalSvc.CompleteExpiredRentals(r.Context())
	if err != nil {
		writeDomainError(w, "CompleteExpiredRentals", err)
		return
	}
	logger.Info("Expiry sweep triggered over HTTP", "processed", res.Processed, "success", res.Success)
	writeJSON(w, http.StatusOK, res)
}
