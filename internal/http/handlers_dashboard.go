package http

import (
	"net/http"
)

const dashboardRecentLimit = 5

type dashboardResponse struct {
	BalanceCents        int64             `json:"balanceCents"`
	Balance             string            `json:"balance"`
	RecentSpendingCents int64             `json:"recentSpendingCents"`
	RecentSpending      string            `json:"recentSpending"`
	Advice              *adviceJSON       `json:"advice"`
	AdvicePending       bool              `json:"advicePending"`
	RecentTransactions  []transactionJSON `json:"recentTransactions"`
}

// handleDashboard assembles the home view: headline balance, trailing
// spending, the advisory status and the most recent entries. Advice is
// null with advicePending set while the newest refresh is in flight, so
// the client can show a loading placeholder instead of stale figures.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		methodNotAllowed(w, "GET")
		return
	}

	snap := s.store.Snapshot()
	entries := s.store.List()
	if len(entries) > dashboardRecentLimit {
		entries = entries[:dashboardRecentLimit]
	}

	resp := dashboardResponse{
		BalanceCents:        snap.Balance.Cents,
		Balance:             formatUSD(snap.Balance.Cents),
		RecentSpendingCents: snap.RecentSpending.Cents,
		RecentSpending:      formatUSD(snap.RecentSpending.Cents),
		RecentTransactions:  toTransactionListJSON(entries),
	}

	if status, ready := s.advisor.Status(); ready {
		resp.Advice = toAdviceJSON(status)
	} else {
		resp.AdvicePending = true
	}

	writeJSON(w, r, http.StatusOK, resp)
}
