package plaid

import (
	"context"
	"time"

	"github.com/Veraticus/spice-bridge/internal/model"
)

// ProviderGateway defines the contract for talking to the aggregation
// provider. This interface allows for easy mocking in tests and swapping
// data sources.
type ProviderGateway interface {
	// CreateLinkToken creates a short-lived token used to initiate the
	// account-linking flow.
	CreateLinkToken(ctx context.Context) (string, error)

	// ExchangePublicToken trades a Link public token for a durable access
	// token and its item ID. Not idempotent; callers must not retry it
	// blindly.
	ExchangePublicToken(ctx context.Context, publicToken string) (accessToken, itemID string, err error)

	// CreateSandboxPublicToken creates a public token against the sandbox
	// environment without going through Link.
	CreateSandboxPublicToken(ctx context.Context) (string, error)

	// GetTransactions fetches the credential's accounts and all
	// transactions within the date range.
	GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]model.Account, []model.Transaction, error)
}
