package core

import (
	"errors"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

const (
	MoodCalm       Mood = "calm"
	MoodAlert      Mood = "alert"
	MoodOptimistic Mood = "optimistic"
)

type (
	// TransactionType tags a transaction as expense or income. It is
	// informational metadata: the sign of Amount is the source of truth
	// for financial effect, and the two are never validated against each
	// other once stored.
	TransactionType string

	// Mood is the coarse sentiment tag attached to an advisory message.
	Mood string

	// Money is a signed amount in cents. Negative means expense,
	// positive means income.
	Money struct {
		Cents int64
	}

	// Transaction is a single ledger entry. Immutable once created;
	// there is no update or delete operation anywhere in the system.
	Transaction struct {
		ID       string
		Title    string
		Amount   Money
		Date     time.Time
		Category string
		Type     TransactionType
	}

	// Draft is a transaction before the ledger assigns an identifier.
	Draft struct {
		Title    string
		Amount   Money
		Date     time.Time
		Category string
		Type     TransactionType
	}

	// FinancialStatus is the advisory record produced by the advice
	// provider. Produced fresh on each request, never cached.
	FinancialStatus struct {
		SafeToSpend Money
		Message     string
		Mood        Mood
	}
)

var (
	ErrZeroAmount    = errors.New("amount cannot be zero")
	ErrInvalidAmount = errors.New("invalid amount format")
	ErrEmptyTitle    = errors.New("empty title")
	ErrZeroDate      = errors.New("date cannot be zero")
	ErrInvalidType   = errors.New("invalid transaction type")
	ErrInvalidMood   = errors.New("invalid mood")
	ErrEmptyMessage  = errors.New("empty message")
)

// Valid reports whether the transaction type is one of the known tags.
func (t TransactionType) Valid() bool {
	return t == Expense || t == Income
}

// Valid reports whether the mood is one of the known sentiment tags.
func (m Mood) Valid() bool {
	switch m {
	case MoodCalm, MoodAlert, MoodOptimistic:
		return true
	}
	return false
}

// IsExpense reports whether the entry is tagged as an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == Expense
}

func (d Draft) Validate() error {
	if d.Amount.Cents == 0 {
		return ErrZeroAmount
	}
	if len(strings.TrimSpace(d.Title)) == 0 {
		return ErrEmptyTitle
	}
	if len(d.Title) > 200 {
		return errors.New("title too long (max 200 characters)")
	}
	if d.Date.IsZero() {
		return ErrZeroDate
	}
	if !d.Type.Valid() {
		return ErrInvalidType
	}
	return nil
}

func (s FinancialStatus) Validate() error {
	if len(strings.TrimSpace(s.Message)) == 0 {
		return ErrEmptyMessage
	}
	if !s.Mood.Valid() {
		return ErrInvalidMood
	}
	return nil
}
