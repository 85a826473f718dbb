package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"rentwheels-backend/internal/domain"
	"rentwheels-backend/internal/logger"
	"rentwheels-backend/internal/security"
	"rentwheels-backend/internal/service"

	"github.com/gorilla/mux"
)

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewRouter builds the operational HTTP surface: liveness and the manual
// trigger for the expiry sweep.
func NewRouter(db Pinger, tokens security.TokenManager, rentalSvc service.RentalService) *mux.Router {
	router := mux.NewRouter()
	router.Use(loggingMiddleware)

	health := NewHealthHandler(db)
	router.HandleFunc("/healthz", health.HandleHealth).Methods(http.MethodGet)

	jobs := NewJobsHandler(rentalSvc)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(adminOnly(tokens))
	internal.HandleFunc("/jobs/complete-expired-rentals", jobs.HandleCompleteExpiredRentals).Methods(http.MethodPost)

	return router
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		logger.Debug("HTTP request", "method", r.Method, "path", r.URL.Path, "status", rec.status, "duration", time.Since(start))
	})
}

// adminOnly requires a valid access token carrying the admin role. It
// applies the same checks as the gRPC auth interceptor.
func adminOnly(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || raw == "" {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", "missing bearer token")
				return
			}
			claims, err := tokens.ValidateToken(raw)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "UNAUTHENTICATED", err.Error())
				return
			}
			if claims.Type != security.TokenTypeAccess {
				writeError(w, http.StatusForbidden, string(domain.KindForbidden), security.ErrWrongTokenType.Error())
				return
			}
			if claims.Role != domain.RoleAdmin {
				writeError(w, http.StatusForbidden, string(domain.KindForbidden), "admin role required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	var body errorBody
	body.Error.Code = code
	body.Error.Message = message
	writeJSON(w, status, body)
}

// writeDomainError maps a service error onto an HTTP status and the
// error envelope. Internal details are logged, not returned.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	kind := domain.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindForbidden:
		status = http.StatusForbidden
	case domain.KindConflict:
		status = http.StatusConflict
	case domain.KindInvalidTransition, domain.KindUnavailable:
		status = http.StatusUnprocessableEntity
	case domain.KindValidation:
		status = http.StatusBadRequest
	default:
		logger.Error("Request failed", "operation", op, "error", err)
	}
	writeError(w, status, string(kind), domain.ReasonOf(err))
}
