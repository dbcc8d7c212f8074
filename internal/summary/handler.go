package summary

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/trainstats/internal/telemetry/metrics"
	"github.com/2beens/trainstats/internal/telemetry/tracing"
	"github.com/2beens/trainstats/internal/users"
	"github.com/2beens/trainstats/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultPeriodDays = 30

// summaryService abstracts the Summarizer so that the handler can also
// sit behind the caching decorator (and be tested with a stub).
type summaryService interface {
	Summarize(ctx context.Context, userID int64, periodDays int) (*ActivitySummary, error)
}

type Handler struct {
	service        summaryService
	metricsManager *metrics.Manager
}

func NewHandler(service summaryService, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		service:        service,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.summary.get")
	defer span.End()

	vars := mux.Vars(r)
	userIDStr := vars["userID"]
	if userIDStr == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	periodDays := defaultPeriodDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		periodDays, err = strconv.Atoi(daysStr)
		if err != nil || periodDays < 0 {
			http.Error(w, "invalid days parameter (must be a non-negative integer)", http.StatusBadRequest)
			return
		}
	}

	activitySummary, err := handler.service.Summarize(ctx, userID, periodDays)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to compute summary for user %d: %s", userID, err)
		http.Error(w, "summary temporarily unavailable", http.StatusInternalServerError)
		return
	}

	summaryJson, err := json.Marshal(activitySummary)
	if err != nil {
		log.Errorf("failed to marshal summary for user %d: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterSummariesComputed.Inc()
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, summaryJson, http.StatusOK)
}
