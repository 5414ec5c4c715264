package events

import (
	"testing"
	"time"

	"aether/internal/core"
)

func TestNewTransactionCreatedMessage(t *testing.T) {
	txn := core.Transaction{
		ID:       "txn-7",
		Title:    "Whole Foods Market",
		Amount:   core.Money{Cents: -12450},
		Date:     time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC),
		Category: "food",
		Type:     core.Expense,
	}

	msg := NewTransactionCreatedMessage(txn)

	if msg.ID != "txn-7" {
		t.Errorf("ID = %q, want txn-7", msg.ID)
	}
	if msg.AmountCents != -12450 {
		t.Errorf("AmountCents = %d, want -12450", msg.AmountCents)
	}
	if msg.Type != "expense" {
		t.Errorf("Type = %q, want expense", msg.Type)
	}
	if !msg.Date.Equal(txn.Date) {
		t.Errorf("Date = %v, want %v", msg.Date, txn.Date)
	}
	if msg.Timestamp.IsZero() {
		t.Error("Timestamp should not be zero")
	}
}

func TestTransactionCreatedMessageJSON(t *testing.T) {
	msg := &TransactionCreatedMessage{
		ID:          "txn-1",
		Title:       "Dividend Payout",
		AmountCents: 85000,
		Category:    "invest",
		Type:        "income",
		Date:        time.Date(2024, 5, 29, 0, 0, 0, 0, time.UTC),
		Timestamp:   time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}

	data, err := msg.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}

	parsed, err := TransactionCreatedMessageFromJSON(data)
	if err != nil {
		t.Fatalf("TransactionCreatedMessageFromJSON() error = %v", err)
	}

	if parsed.ID != msg.ID || parsed.AmountCents != msg.AmountCents || parsed.Category != msg.Category {
		t.Errorf("parsed = %+v, want %+v", parsed, msg)
	}
	if !parsed.Timestamp.Equal(msg.Timestamp) {
		t.Errorf("Timestamp = %v, want %v", parsed.Timestamp, msg.Timestamp)
	}
}

func TestTransactionCreatedMessageInvalidJSON(t *testing.T) {
	if _, err := TransactionCreatedMessageFromJSON([]byte(`{"amountCents": "nope"}`)); err == nil {
		t.Error("FromJSON should fail with invalid JSON")
	}
}
