package plaid

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/spice-bridge/internal/model"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		config  Config
		name    string
		errMsg  string
		wantErr bool
	}{
		{
			name: "valid sandbox config",
			config: Config{
				ClientID:    "test-client-id",
				Secret:      "test-secret",
				Environment: "sandbox",
			},
			wantErr: false,
		},
		{
			name: "valid production config",
			config: Config{
				ClientID:    "test-client-id",
				Secret:      "test-secret",
				Environment: "production",
			},
			wantErr: false,
		},
		{
			name: "missing client ID",
			config: Config{
				Secret:      "test-secret",
				Environment: "sandbox",
			},
			wantErr: true,
			errMsg:  "plaid client ID is required",
		},
		{
			name: "missing secret",
			config: Config{
				ClientID:    "test-client-id",
				Environment: "sandbox",
			},
			wantErr: true,
			errMsg:  "plaid secret is required",
		},
		{
			name: "missing environment",
			config: Config{
				ClientID: "test-client-id",
				Secret:   "test-secret",
			},
			wantErr: true,
			errMsg:  "plaid environment is required",
		},
		{
			name: "invalid environment",
			config: Config{
				ClientID:    "test-client-id",
				Secret:      "test-secret",
				Environment: "development",
			},
			wantErr: true,
			errMsg:  "invalid Plaid environment",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config creates client",
			config: Config{
				ClientID:    "test-client-id",
				Secret:      "test-secret",
				Environment: "sandbox",
			},
			wantErr: false,
		},
		{
			name: "invalid config returns error",
			config: Config{
				ClientID: "test-client-id",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.config)
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client)
				assert.NotNil(t, client.client)
				assert.NotNil(t, client.logger)
				assert.Equal(t, tt.config.Environment, client.environment)
			}
		})
	}
}

func TestNewClient_DefaultClientName(t *testing.T) {
	client, err := NewClient(Config{
		ClientID:    "test-client-id",
		Secret:      "test-secret",
		Environment: "sandbox",
	})
	require.NoError(t, err)
	assert.Equal(t, "Spice Bridge", client.clientName)
}

func TestClient_CreateSandboxPublicToken_ProductionRejected(t *testing.T) {
	client, err := NewClient(Config{
		ClientID:    "test-client-id",
		Secret:      "test-secret",
		Environment: "production",
	})
	require.NoError(t, err)

	_, err = client.CreateSandboxPublicToken(context.Background())
	require.Error(t, err)

	var providerErr *ProviderError
	require.True(t, errors.As(err, &providerErr))
	assert.Equal(t, "SANDBOX_ONLY", providerErr.Code)
	assert.Equal(t, http.StatusBadRequest, providerErr.StatusCode)
}

func TestClient_GetTransactions_Validation(t *testing.T) {
	client := &Client{
		logger: testLogger(),
	}

	tests := []struct {
		ctx         context.Context
		startDate   time.Time
		endDate     time.Time
		name        string
		accessToken string
		errMsg      string
	}{
		{
			name:        "nil context",
			ctx:         nil,
			accessToken: "access-test",
			startDate:   time.Now().AddDate(0, -1, 0),
			endDate:     time.Now(),
			errMsg:      "context cannot be nil",
		},
		{
			name:        "missing access token",
			ctx:         context.Background(),
			startDate:   time.Now().AddDate(0, -1, 0),
			endDate:     time.Now(),
			errMsg:      "access token is required",
		},
		{
			name:        "start date after end date",
			ctx:         context.Background(),
			accessToken: "access-test",
			startDate:   time.Now(),
			endDate:     time.Now().AddDate(0, -1, 0),
			errMsg:      "start date must be before end date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := client.GetTransactions(tt.ctx, tt.accessToken, tt.startDate, tt.endDate)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestProviderError_Error(t *testing.T) {
	withCode := &ProviderError{Code: "INVALID_ACCESS_TOKEN", Message: "could not find matching access token", StatusCode: 400}
	assert.Equal(t, "plaid API error: INVALID_ACCESS_TOKEN - could not find matching access token", withCode.Error())

	withoutCode := &ProviderError{Message: "connection refused", StatusCode: 502}
	assert.Equal(t, "plaid API error: connection refused", withoutCode.Error())
}

func TestMockGateway(t *testing.T) {
	mock := NewMockGateway()

	// Defaults
	linkToken, err := mock.CreateLinkToken(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, linkToken)
	assert.Equal(t, 1, mock.CreateLinkTokenCalls)

	// Custom behavior and call tracking
	mock.ExchangePublicTokenFn = func(_ context.Context, _ string) (string, string, error) {
		return "access-custom", "item-custom", nil
	}
	accessToken, itemID, err := mock.ExchangePublicToken(context.Background(), "public-test")
	require.NoError(t, err)
	assert.Equal(t, "access-custom", accessToken)
	assert.Equal(t, "item-custom", itemID)
	require.Len(t, mock.ExchangePublicTokenCalls, 1)
	assert.Equal(t, "public-test", mock.ExchangePublicTokenCalls[0])

	startDate := time.Now().AddDate(0, -1, 0)
	endDate := time.Now()
	expectedTxs := []model.Transaction{
		{ID: "tx1", Name: "Test Transaction", Amount: amountPtr(10.50)},
	}
	mock.GetTransactionsFn = func(_ context.Context, _ string, _, _ time.Time) ([]model.Account, []model.Transaction, error) {
		return nil, expectedTxs, nil
	}

	_, txs, err := mock.GetTransactions(context.Background(), "access-test", startDate, endDate)
	require.NoError(t, err)
	assert.Equal(t, expectedTxs, txs)
	require.Len(t, mock.GetTransactionsCalls, 1)
	assert.Equal(t, "access-test", mock.GetTransactionsCalls[0].AccessToken)
	assert.Equal(t, startDate, mock.GetTransactionsCalls[0].StartDate)
	assert.Equal(t, endDate, mock.GetTransactionsCalls[0].EndDate)

	// Reset clears tracking
	mock.Reset()
	assert.Zero(t, mock.CreateLinkTokenCalls)
	assert.Empty(t, mock.ExchangePublicTokenCalls)
	assert.Empty(t, mock.GetTransactionsCalls)
}
