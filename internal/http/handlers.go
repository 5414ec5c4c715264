package http

import (
	"time"

	"aether/internal/category"
	"aether/internal/core"
)

// transactionJSON is the wire shape of a ledger entry. The category is
// resolved to its full registry record; unknown identifiers fall back
// to the default category rather than failing the render.
type transactionJSON struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	AmountCents int64             `json:"amountCents"`
	Amount      string            `json:"amount"`
	Date        time.Time         `json:"date"`
	Category    category.Category `json:"category"`
	Type        string            `json:"type"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		ID:          t.ID,
		Title:       t.Title,
		AmountCents: t.Amount.Cents,
		Amount:      formatUSD(t.Amount.Cents),
		Date:        t.Date,
		Category:    category.Lookup(t.Category),
		Type:        string(t.Type),
	}
}

func toTransactionListJSON(entries []core.Transaction) []transactionJSON {
	out := make([]transactionJSON, 0, len(entries))
	for _, t := range entries {
		out = append(out, toTransactionJSON(t))
	}
	return out
}

type adviceJSON struct {
	SafeToSpendCents int64  `json:"safeToSpendCents"`
	SafeToSpend      string `json:"safeToSpend"`
	Message          string `json:"message"`
	Mood             string `json:"mood"`
}

func toAdviceJSON(s core.FinancialStatus) *adviceJSON {
	return &adviceJSON{
		SafeToSpendCents: s.SafeToSpend.Cents,
		SafeToSpend:      formatUSD(s.SafeToSpend.Cents),
		Message:          s.Message,
		Mood:             string(s.Mood),
	}
}
