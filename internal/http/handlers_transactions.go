package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"aether/internal/category"
	"aether/internal/core"
)

type createTransactionRequest struct {
	Title    string `json:"title"`
	Amount   string `json:"amount"`
	Category string `json:"category"`
	Type     string `json:"type"`
	Date     string `json:"date"`
}

type transactionListResponse struct {
	Transactions []transactionJSON `json:"transactions"`
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		methodNotAllowed(w, "GET, POST")
	}
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, transactionListResponse{
		Transactions: toTransactionListJSON(s.store.List()),
	})
}

// handleCreateTransaction records a manual entry. The amount arrives as
// a positive decimal string; the stored sign is derived from the type,
// so an expense of "58.00" lands in the ledger as -5800 cents.
func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.ErrorContext(r.Context(), "Decode request failed", "error", err, "url", r.URL.Path)
		writeError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	cents, err := core.ParseDecimalToCents(req.Amount)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid amount: "+err.Error())
		return
	}

	txnType := core.TransactionType(req.Type)
	if req.Type == "" {
		txnType = core.Expense
	}
	if !txnType.Valid() {
		writeError(w, r, http.StatusUnprocessableEntity, "invalid type: must be expense or income")
		return
	}
	if txnType == core.Expense {
		cents = -cents
	}

	catID := sanitizeInput(req.Category)
	if catID == "" {
		catID = category.Default().ID
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			writeError(w, r, http.StatusUnprocessableEntity, "invalid date: must be RFC 3339")
			return
		}
		date = parsed
	}

	draft := core.Draft{
		Title:    sanitizeInput(req.Title),
		Amount:   core.Money{Cents: cents},
		Date:     date,
		Category: catID,
		Type:     txnType,
	}

	txn, err := s.txns.Create(r.Context(), draft)
	if err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.analyticsCache.Purge()
	writeJSON(w, r, http.StatusCreated, toTransactionJSON(txn))
}

type categoriesResponse struct {
	Categories []category.Category `json:"categories"`
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}
	writeJSON(w, r, http.StatusOK, categoriesResponse{Categories: category.All()})
}
