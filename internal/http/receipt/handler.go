// Package receipt exposes receipt image parsing.
package receipt

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pocketwatch-io/pocketwatch/internal/receipt"
)

// maxImageBytes caps uploads at 10 MiB.
const maxImageBytes = 10 << 20

type Handler struct {
	svc *receipt.Service
}

func NewHandler(svc *receipt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/parse", h.parse)
}

type itemResponse struct {
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Quantity int    `json:"quantity,omitempty"`
}

type parseResponse struct {
	Merchant   string         `json:"merchant"`
	Amount     int64          `json:"amount"`
	Date       string         `json:"date"`
	Items      []itemResponse `json:"items"`
	RawText    string         `json:"raw_text"`
	Confidence float64        `json:"confidence"`
	Valid      bool           `json:"is_valid"`
	Errors     []string       `json:"errors"`
	Warnings   []string       `json:"warnings"`
}

type textRequest struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// parse accepts either a multipart image upload (field "receipt", run through
// OCR) or a JSON body with pre-recognized text.
func (h *Handler) parse(w http.ResponseWriter, r *http.Request) {
	var (
		data       receipt.Data
		validation receipt.Validation
	)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		var req textRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Text) == "" {
			http.Error(w, "text is required", http.StatusBadRequest)
			return
		}

		var err error

		data, validation, err = h.svc.ProcessText(req.Text, req.Confidence)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	} else {
		file, _, err := r.FormFile("receipt")
		if err != nil {
			http.Error(w, "missing receipt file", http.StatusBadRequest)
			return
		}
		defer file.Close()

		image, err := io.ReadAll(io.LimitReader(file, maxImageBytes))
		if err != nil {
			http.Error(w, "reading receipt file", http.StatusBadRequest)
			return
		}

		data, validation, err = h.svc.Process(r.Context(), image)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
	}

	items := make([]itemResponse, len(data.Items))
	for i, item := range data.Items {
		items[i] = itemResponse{Name: item.Name, Price: item.PriceCents, Quantity: item.Quantity}
	}

	resp := parseResponse{
		Merchant:   data.Merchant,
		Amount:     data.AmountCents,
		Date:       data.Date.Format(time.DateOnly),
		Items:      items,
		RawText:    data.RawText,
		Confidence: data.Confidence,
		Valid:      validation.Valid,
		Errors:     validation.Errors,
		Warnings:   validation.Warnings,
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
