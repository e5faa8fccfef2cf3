// Package model defines the data records exchanged between the provider
// gateway, the analytics aggregator, and the HTTP surface.
package model

// Account is an immutable snapshot of a provider account and its balances.
// Balances are pointers because the provider reports them as nullable; a
// missing current balance is a validation failure, not a zero.
type Account struct {
	ID               string   `json:"account_id"`
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Subtype          string   `json:"subtype,omitempty"`
	AvailableBalance *float64 `json:"available_balance"`
	CurrentBalance   *float64 `json:"current_balance"`
	Currency         string   `json:"currency,omitempty"`
}

// Validate checks that all required fields are present.
func (a *Account) Validate() error {
	if a.ID == "" {
		return &ValidationError{RecordType: "account", Field: "account_id"}
	}
	if a.CurrentBalance == nil {
		return &ValidationError{RecordType: "account", RecordID: a.ID, Field: "current_balance"}
	}
	return nil
}
