package core

import (
	"sort"
	"time"
)

// RecentSpendingWindow is the trailing window considered "recent" for the
// spending metric.
const RecentSpendingWindow = 7 * 24 * time.Hour

// highExpenseCents marks a day as carrying a notable expense when any
// single entry goes below this amount.
const highExpenseCents = -10000

// CategoryTotal is spending aggregated by category identifier.
type CategoryTotal struct {
	Category string
	Total    Money
}

// DayActivity groups the entries of one calendar day together with the
// markers the calendar view renders as dots.
type DayActivity struct {
	Day            int
	HasIncome      bool
	HasHighExpense bool
	HasExpense     bool
	Transactions   []Transaction
}

// Balance returns starting capital plus the signed sum over all entries.
// Always recomputed from scratch so the figure cannot drift.
func Balance(starting Money, entries []Transaction) Money {
	total := starting.Cents
	for _, t := range entries {
		total += t.Amount.Cents
	}
	return Money{Cents: total}
}

// RecentSpending sums the magnitudes of expense-tagged entries whose date
// falls within the trailing window from now. The same entries can
// legitimately yield a different result at a later now.
func RecentSpending(entries []Transaction, now time.Time) Money {
	var total int64
	for _, t := range entries {
		if !t.IsExpense() {
			continue
		}
		if now.Sub(t.Date) >= RecentSpendingWindow {
			continue
		}
		total += t.Amount.Abs().Cents
	}
	return Money{Cents: total}
}

// CategoryBreakdown aggregates expense magnitudes per category, sorted by
// amount descending. Income entries are excluded. Ties break on category
// identifier so the order is stable.
func CategoryBreakdown(entries []Transaction) []CategoryTotal {
	grouped := make(map[string]int64)
	for _, t := range entries {
		if !t.IsExpense() {
			continue
		}
		grouped[t.Category] += t.Amount.Abs().Cents
	}

	out := make([]CategoryTotal, 0, len(grouped))
	for id, cents := range grouped {
		out = append(out, CategoryTotal{Category: id, Total: Money{Cents: cents}})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total.Cents != out[j].Total.Cents {
			return out[i].Total.Cents > out[j].Total.Cents
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// TotalSpent sums a breakdown back into a single figure.
func TotalSpent(breakdown []CategoryTotal) Money {
	var total int64
	for _, c := range breakdown {
		total += c.Total.Cents
	}
	return Money{Cents: total}
}

// DaysWithActivity groups the entries of the given month by day of month,
// ascending. Days without entries are omitted. Within a day, entries keep
// their ledger order (most recent insertion first).
func DaysWithActivity(entries []Transaction, year int, month time.Month) []DayActivity {
	byDay := make(map[int]*DayActivity)
	for _, t := range entries {
		if t.Date.Year() != year || t.Date.Month() != month {
			continue
		}
		day := t.Date.Day()
		d, ok := byDay[day]
		if !ok {
			d = &DayActivity{Day: day}
			byDay[day] = d
		}
		if t.Type == Income {
			d.HasIncome = true
		}
		if t.IsExpense() {
			d.HasExpense = true
		}
		if t.Amount.Cents < highExpenseCents {
			d.HasHighExpense = true
		}
		d.Transactions = append(d.Transactions, t)
	}

	out := make([]DayActivity, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}
