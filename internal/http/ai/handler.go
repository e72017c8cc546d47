// Package ai exposes AI categorization and insight generation.
package ai

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pocketwatch-io/pocketwatch/internal/ai"
	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/auth"
	"github.com/pocketwatch-io/pocketwatch/internal/categorize"
)

type Handler struct {
	svc       *ai.Service
	analytics *analytics.Service
}

func NewHandler(svc *ai.Service, analyticsSvc *analytics.Service) *Handler {
	return &Handler{svc: svc, analytics: analyticsSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/categorize", h.categorize)
	r.Post("/insights", h.insights)
}

type categorizeRequest struct {
	Description string `json:"description"`
	Merchant    string `json:"merchant,omitempty"`
	Amount      int64  `json:"amount,omitempty"`
}

func (h *Handler) categorize(w http.ResponseWriter, r *http.Request) {
	var req categorizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Description == "" {
		http.Error(w, "description is required", http.StatusBadRequest)
		return
	}

	suggestion := h.svc.Categorize(r.Context(), categorize.Input{
		Description: req.Description,
		Merchant:    req.Merchant,
		AmountCents: req.Amount,
	})

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(suggestion); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type insightsRequest struct {
	Period string `json:"period,omitempty"`
}

func (h *Handler) insights(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, _, err := h.analytics.Get(r.Context(), userID, analytics.ParsePeriod(req.Period))
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	insights := h.svc.Insights(r.Context(), result)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(insights); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
