package importcsv

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pocketwatch-io/pocketwatch/internal/auth"
	"github.com/pocketwatch-io/pocketwatch/internal/categorize"
	"github.com/pocketwatch-io/pocketwatch/internal/category"
	"github.com/pocketwatch-io/pocketwatch/internal/importer"
	"github.com/pocketwatch-io/pocketwatch/internal/matching"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

const maxStatementBytes = 10 << 20

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
	catSvc    *category.Service
	matchSvc  *matching.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service, catSvc *category.Service, matchSvc *matching.Service) *Handler {
	return &Handler{
		importSvc: importSvc,
		txSvc:     txSvc,
		catSvc:    catSvc,
		matchSvc:  matchSvc,
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedTransaction struct {
	ID          uuid.UUID        `json:"id"`
	Amount      int64            `json:"amount"`
	Type        transaction.Type `json:"type"`
	Description string           `json:"description"`
	Merchant    string           `json:"merchant,omitempty"`
	Category    string           `json:"category"`
	Date        time.Time        `json:"date"`
}

type importResponse struct {
	Imported     int                   `json:"imported"`
	Transactions []importedTransaction `json:"transactions"`
}

// importCSV parses an uploaded bank statement and creates a transaction per
// row. Categories come from the user's learned rules first, then the keyword
// classifier.
func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxStatementBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	resp := importResponse{Transactions: make([]importedTransaction, 0, len(params))}

	for _, p := range params {
		categoryName, err := h.matchSvc.Suggest(r.Context(), userID, p.Description)
		if err != nil {
			slog.Error("rule lookup failed, falling back to classifier",
				"error", err, "description", p.Description)
			categoryName = ""
		}

		if categoryName == "" {
			categoryName = categorize.Classify(categorize.Input{
				Description: p.Description,
				Merchant:    p.Merchant,
				AmountCents: p.Amount,
			}).Category
		}

		cat, err := h.catSvc.FindOrCreate(r.Context(), userID, categoryName, p.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		p.UserID = userID
		p.CategoryID = &cat.ID

		tx, err := h.txSvc.Create(r.Context(), p)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		resp.Transactions = append(resp.Transactions, importedTransaction{
			ID:          tx.ID,
			Amount:      tx.Amount,
			Type:        tx.Type,
			Description: tx.Description,
			Merchant:    tx.Merchant,
			Category:    cat.Name,
			Date:        tx.Date,
		})
	}

	resp.Imported = len(resp.Transactions)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
