package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(v float64) *float64 {
	return &v
}

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account Account
		errMsg  string
		wantErr bool
	}{
		{
			name: "valid account",
			account: Account{
				ID:             "acc1",
				Name:           "Checking",
				Type:           "depository",
				CurrentBalance: ptr(100),
			},
			wantErr: false,
		},
		{
			name: "nil available balance is allowed",
			account: Account{
				ID:             "acc1",
				CurrentBalance: ptr(100),
			},
			wantErr: false,
		},
		{
			name:    "missing ID",
			account: Account{CurrentBalance: ptr(100)},
			wantErr: true,
			errMsg:  "missing account_id",
		},
		{
			name:    "missing current balance",
			account: Account{ID: "acc1"},
			wantErr: true,
			errMsg:  "invalid account record acc1: missing current_balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)

				var validationErr *ValidationError
				assert.True(t, errors.As(err, &validationErr))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	tests := []struct {
		name        string
		transaction Transaction
		errMsg      string
		wantErr     bool
	}{
		{
			name: "valid transaction",
			transaction: Transaction{
				Date:      time.Now(),
				ID:        "tx1",
				AccountID: "acc1",
				Amount:    ptr(-12.34),
			},
			wantErr: false,
		},
		{
			name:        "missing ID",
			transaction: Transaction{Amount: ptr(1)},
			wantErr:     true,
			errMsg:      "missing transaction_id",
		},
		{
			name:        "missing amount",
			transaction: Transaction{ID: "tx1", AccountID: "acc1"},
			wantErr:     true,
			errMsg:      "invalid transaction record tx1: missing amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.transaction.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestTransaction_PrimaryCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		expected   string
	}{
		{name: "no categories", categories: nil, expected: ""},
		{name: "single category", categories: []string{"food"}, expected: "food"},
		{name: "primary label first", categories: []string{"food", "food_restaurants"}, expected: "food"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := Transaction{Categories: tt.categories}
			assert.Equal(t, tt.expected, tx.PrimaryCategory())
		})
	}
}
