// Package analytics serves the aggregated dashboard data.
package analytics

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pocketwatch-io/pocketwatch/internal/analytics"
	"github.com/pocketwatch-io/pocketwatch/internal/auth"
)

type Handler struct {
	svc           *analytics.Service
	cacheTTL      time.Duration
	emptyCacheTTL time.Duration
}

func NewHandler(svc *analytics.Service, cacheTTL, emptyCacheTTL time.Duration) *Handler {
	return &Handler{svc: svc, cacheTTL: cacheTTL, emptyCacheTTL: emptyCacheTTL}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Get("/export", h.exportCSV)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	period := analytics.ParsePeriod(r.URL.Query().Get("period"))

	result, status, err := h.svc.Get(r.Context(), userID, period)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	maxAge := h.cacheTTL
	if status == analytics.CacheMissEmpty {
		maxAge = h.emptyCacheTTL
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache-Status", string(status))
	w.Header().Set("Cache-Control", fmt.Sprintf("private, max-age=%d", int(maxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) exportCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	period := analytics.ParsePeriod(r.URL.Query().Get("period"))

	result, _, err := h.svc.Get(r.Context(), userID, period)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", fmt.Sprintf("analytics_%s_%s.csv", period, time.Now().Format("20060102"))))

	if err := analytics.WriteCSV(w, result); err != nil {
		slog.Error("failed to write csv", "error", err)
	}
}
