package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"aether/internal/category"
	"aether/internal/voice"
)

type captureStateJSON struct {
	ID         string           `json:"id"`
	Phase      string           `json:"phase"`
	Transcript string           `json:"transcript,omitempty"`
	Draft      *transactionJSON `json:"draft,omitempty"`
}

func toCaptureStateJSON(st voice.State) captureStateJSON {
	out := captureStateJSON{
		ID:         st.ID,
		Phase:      string(st.Phase),
		Transcript: st.Transcript,
	}
	if st.Draft != nil {
		d := *st.Draft
		out.Draft = &transactionJSON{
			Title:       d.Title,
			AmountCents: d.Amount.Cents,
			Amount:      formatUSD(d.Amount.Cents),
			Date:        d.Date,
			Category:    category.Lookup(d.Category),
			Type:        string(d.Type),
		}
	}
	return out
}

// handleVoiceCaptures starts a new capture session.
func (s *Server) handleVoiceCaptures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		methodNotAllowed(w, "POST")
		return
	}
	st := s.captures.Start()
	writeJSON(w, r, http.StatusCreated, toCaptureStateJSON(st))
}

// handleVoiceCapture serves a single session: GET polls its state, POST
// on the confirm subresource records the previewed draft.
func (s *Server) handleVoiceCapture(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/voice/captures/")
	id, sub, _ := strings.Cut(rest, "/")
	if id == "" {
		writeError(w, r, http.StatusNotFound, "capture session not found")
		return
	}

	switch {
	case sub == "" && r.Method == http.MethodGet:
		st, err := s.captures.Get(id)
		if err != nil {
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		}
		writeJSON(w, r, http.StatusOK, toCaptureStateJSON(st))

	case sub == "confirm" && r.Method == http.MethodPost:
		txn, err := s.captures.Confirm(r.Context(), id)
		switch {
		case errors.Is(err, voice.ErrNotFound):
			writeError(w, r, http.StatusNotFound, err.Error())
			return
		case errors.Is(err, voice.ErrNotReady):
			writeError(w, r, http.StatusConflict, err.Error())
			return
		case err != nil:
			slog.ErrorContext(r.Context(), "Capture confirm failed", "error", err, "capture_id", id)
			writeError(w, r, http.StatusUnprocessableEntity, err.Error())
			return
		}
		s.analyticsCache.Purge()
		writeJSON(w, r, http.StatusCreated, toTransactionJSON(txn))

	case sub == "":
		methodNotAllowed(w, "GET")

	case sub == "confirm":
		methodNotAllowed(w, "POST")

	default:
		writeError(w, r, http.StatusNotFound, "not found")
	}
}
