package http

import (
	"log/slog"
	"net/http"
	"time"

	"aether/internal/category"
	"aether/internal/core"
)

type dayActivityJSON struct {
	Day            int               `json:"day"`
	HasIncome      bool              `json:"hasIncome"`
	HasExpense     bool              `json:"hasExpense"`
	HasHighExpense bool              `json:"hasHighExpense"`
	Transactions   []transactionJSON `json:"transactions"`
}

type calendarResponse struct {
	Year  int               `json:"year"`
	Month int               `json:"month"`
	Days  []dayActivityJSON `json:"days"`
}

// handleCalendar returns per-day activity markers for one month. Days
// without entries are omitted; the client renders those as blanks.
func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	year, month := parseYearMonth(r, time.Now())
	days := core.DaysWithActivity(s.store.List(), year, time.Month(month))

	resp := calendarResponse{Year: year, Month: month, Days: make([]dayActivityJSON, 0, len(days))}
	for _, d := range days {
		resp.Days = append(resp.Days, dayActivityJSON{
			Day:            d.Day,
			HasIncome:      d.HasIncome,
			HasExpense:     d.HasExpense,
			HasHighExpense: d.HasHighExpense,
			Transactions:   toTransactionListJSON(d.Transactions),
		})
	}

	writeJSON(w, r, http.StatusOK, resp)
}

type categoryTotalJSON struct {
	Category   category.Category `json:"category"`
	TotalCents int64             `json:"totalCents"`
	Total      string            `json:"total"`
	Share      float64           `json:"share"`
}

type analyticsView struct {
	TotalSpentCents int64               `json:"totalSpentCents"`
	TotalSpent      string              `json:"totalSpent"`
	Categories      []categoryTotalJSON `json:"categories"`
}

const analyticsCacheKey = "summary"

// handleAnalytics returns total expense spending broken down by
// category, with each row's share of the total. The view is cached and
// purged whenever a transaction is recorded.
func (s *Server) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	if view, found := s.analyticsCache.Get(analyticsCacheKey); found {
		slog.DebugContext(r.Context(), "Analytics cache hit")
		writeJSON(w, r, http.StatusOK, view)
		return
	}

	breakdown := core.CategoryBreakdown(s.store.List())
	total := core.TotalSpent(breakdown)

	view := analyticsView{
		TotalSpentCents: total.Cents,
		TotalSpent:      formatUSD(total.Cents),
		Categories:      make([]categoryTotalJSON, 0, len(breakdown)),
	}
	for _, row := range breakdown {
		share := 0.0
		if total.Cents > 0 {
			share = float64(row.Total.Cents) / float64(total.Cents)
		}
		view.Categories = append(view.Categories, categoryTotalJSON{
			Category:   category.Lookup(row.Category),
			TotalCents: row.Total.Cents,
			Total:      formatUSD(row.Total.Cents),
			Share:      share,
		})
	}

	s.analyticsCache.Set(analyticsCacheKey, view)
	writeJSON(w, r, http.StatusOK, view)
}
