package ledger

import (
	"aether/internal/core"
)

// Seed installs the demo transactions shown on first launch, dated
// relative to the store clock. Oldest entries are appended first so the
// list reads newest-first afterwards.
func (s *Store) Seed() {
	now := s.now()
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)
	threeDaysAgo := now.AddDate(0, 0, -3)

	drafts := []core.Draft{
		{Title: "Local Roastery", Amount: core.Money{Cents: -2400}, Date: threeDaysAgo, Category: "food", Type: core.Expense},
		{Title: "Dividend Payout", Amount: core.Money{Cents: 85000}, Date: threeDaysAgo, Category: "invest", Type: core.Income},
		{Title: "Spotify Family", Amount: core.Money{Cents: -1699}, Date: twoDaysAgo, Category: "utilities", Type: core.Expense},
		{Title: "Uber Premium", Amount: core.Money{Cents: -4520}, Date: yesterday, Category: "transport", Type: core.Expense},
		{Title: "Whole Foods Market", Amount: core.Money{Cents: -12450}, Date: now, Category: "food", Type: core.Expense},
	}
	for _, d := range drafts {
		s.Append(d)
	}
}
