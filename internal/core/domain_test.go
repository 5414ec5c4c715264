package core

import (
	"testing"
	"time"
)

func TestDraftValidate(t *testing.T) {
	good := Draft{
		Title:    "Coffee",
		Amount:   Money{Cents: -5800},
		Date:     time.Now(),
		Category: "food",
		Type:     Expense,
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []Draft{
		{Title: "a", Amount: Money{Cents: 0}, Date: time.Now(), Type: Expense},  // zero amount
		{Title: "", Amount: Money{Cents: -1}, Date: time.Now(), Type: Expense},  // empty title
		{Title: "a", Amount: Money{Cents: -1}, Type: Expense},                   // zero date
		{Title: "a", Amount: Money{Cents: -1}, Date: time.Now(), Type: "loan"},  // unknown type
	}
	for i, d := range bads {
		if err := d.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestTransactionTypeValid(t *testing.T) {
	if !Expense.Valid() || !Income.Valid() {
		t.Fatalf("known types must be valid")
	}
	if TransactionType("transfer").Valid() {
		t.Fatalf("unknown type must be invalid")
	}
}

func TestMoodValid(t *testing.T) {
	for _, m := range []Mood{MoodCalm, MoodAlert, MoodOptimistic} {
		if !m.Valid() {
			t.Fatalf("mood %q must be valid", m)
		}
	}
	if Mood("euphoric").Valid() {
		t.Fatalf("unknown mood must be invalid")
	}
}

func TestFinancialStatusValidate(t *testing.T) {
	good := FinancialStatus{SafeToSpend: Money{Cents: 145000}, Message: "ok", Mood: MoodOptimistic}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (FinancialStatus{Message: "", Mood: MoodCalm}).Validate(); err == nil {
		t.Fatalf("expected error for empty message")
	}
	if err := (FinancialStatus{Message: "ok", Mood: "tense"}).Validate(); err == nil {
		t.Fatalf("expected error for unknown mood")
	}
}
