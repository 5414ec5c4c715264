package events

import (
	"encoding/json"
	"time"

	"aether/internal/core"
)

// TransactionCreatedMessage notifies downstream consumers that a
// transaction was recorded. It carries the full entry so consumers do
// not need to call back into the service.
type TransactionCreatedMessage struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	AmountCents int64     `json:"amountCents"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	Date        time.Time `json:"date"`
	Timestamp   time.Time `json:"timestamp"`
}

func NewTransactionCreatedMessage(txn core.Transaction) *TransactionCreatedMessage {
	return &TransactionCreatedMessage{
		ID:          txn.ID,
		Title:       txn.Title,
		AmountCents: txn.Amount.Cents,
		Category:    txn.Category,
		Type:        string(txn.Type),
		Date:        txn.Date,
		Timestamp:   time.Now(),
	}
}

func (m *TransactionCreatedMessage) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

func TransactionCreatedMessageFromJSON(data []byte) (*TransactionCreatedMessage, error) {
	var msg TransactionCreatedMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, err
	}
	return &msg, nil
}
