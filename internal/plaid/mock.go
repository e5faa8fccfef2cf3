package plaid

import (
	"context"
	"time"

	"github.com/Veraticus/spice-bridge/internal/model"
)

// MockGateway is a mock implementation of ProviderGateway for testing.
type MockGateway struct {
	// Functions that can be set by tests to control behavior
	CreateLinkTokenFn          func(ctx context.Context) (string, error)
	ExchangePublicTokenFn      func(ctx context.Context, publicToken string) (string, string, error)
	CreateSandboxPublicTokenFn func(ctx context.Context) (string, error)
	GetTransactionsFn          func(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]model.Account, []model.Transaction, error)

	// Call tracking
	CreateLinkTokenCalls          int
	ExchangePublicTokenCalls      []string
	CreateSandboxPublicTokenCalls int
	GetTransactionsCalls          []GetTransactionsCall
}

// GetTransactionsCall records the parameters of a GetTransactions call.
type GetTransactionsCall struct {
	AccessToken string
	StartDate   time.Time
	EndDate     time.Time
}

// NewMockGateway creates a new mock provider gateway.
func NewMockGateway() *MockGateway {
	return &MockGateway{}
}

// CreateLinkToken implements ProviderGateway.CreateLinkToken.
func (m *MockGateway) CreateLinkToken(ctx context.Context) (string, error) {
	m.CreateLinkTokenCalls++

	if m.CreateLinkTokenFn != nil {
		return m.CreateLinkTokenFn(ctx)
	}
	return "link-sandbox-mock", nil
}

// ExchangePublicToken implements ProviderGateway.ExchangePublicToken.
func (m *MockGateway) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	m.ExchangePublicTokenCalls = append(m.ExchangePublicTokenCalls, publicToken)

	if m.ExchangePublicTokenFn != nil {
		return m.ExchangePublicTokenFn(ctx, publicToken)
	}
	return "access-sandbox-mock", "item-mock", nil
}

// CreateSandboxPublicToken implements ProviderGateway.CreateSandboxPublicToken.
func (m *MockGateway) CreateSandboxPublicToken(ctx context.Context) (string, error) {
	m.CreateSandboxPublicTokenCalls++

	if m.CreateSandboxPublicTokenFn != nil {
		return m.CreateSandboxPublicTokenFn(ctx)
	}
	return "public-sandbox-mock", nil
}

// GetTransactions implements ProviderGateway.GetTransactions.
func (m *MockGateway) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]model.Account, []model.Transaction, error) {
	m.GetTransactionsCalls = append(m.GetTransactionsCalls, GetTransactionsCall{
		AccessToken: accessToken,
		StartDate:   startDate,
		EndDate:     endDate,
	})

	if m.GetTransactionsFn != nil {
		return m.GetTransactionsFn(ctx, accessToken, startDate, endDate)
	}
	return []model.Account{}, []model.Transaction{}, nil
}

// Reset clears all call tracking.
func (m *MockGateway) Reset() {
	m.CreateLinkTokenCalls = 0
	m.ExchangePublicTokenCalls = nil
	m.CreateSandboxPublicTokenCalls = 0
	m.GetTransactionsCalls = nil
}

// Ensure MockGateway implements ProviderGateway interface.
var _ ProviderGateway = (*MockGateway)(nil)
