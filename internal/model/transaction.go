package model

import "time"

// Transaction represents a single financial transaction fetched from the
// provider. Records are immutable snapshots; nothing in this service
// mutates or persists them.
//
// Amount uses the model-wide sign convention: positive is a credit (money
// in), negative is a debit (money out). The provider gateway normalizes
// upstream sign conventions before records reach this package. Amount is a
// pointer so that a record arriving without one is detectable rather than
// silently zero.
type Transaction struct {
	Date         time.Time `json:"date"`
	ID           string    `json:"transaction_id"`
	AccountID    string    `json:"account_id"`
	Name         string    `json:"name"`
	MerchantName string    `json:"merchant_name,omitempty"`
	Amount       *float64  `json:"amount"`

	// Categories holds the provider's category labels with the primary
	// label first. Aggregation attributes spending to the primary label
	// only.
	Categories []string `json:"categories,omitempty"`
}

// PrimaryCategory returns the transaction's primary category label, or the
// empty string when the transaction is untagged.
func (t *Transaction) PrimaryCategory() string {
	if len(t.Categories) == 0 {
		return ""
	}
	return t.Categories[0]
}

// Validate checks that all required fields are present.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return &ValidationError{RecordType: "transaction", Field: "transaction_id"}
	}
	if t.Amount == nil {
		return &ValidationError{RecordType: "transaction", RecordID: t.ID, Field: "amount"}
	}
	return nil
}
