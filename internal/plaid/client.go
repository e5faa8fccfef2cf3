// Package plaid provides a client for interacting with the Plaid API.
package plaid

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/spice-bridge/internal/model"
	"github.com/plaid/plaid-go/v20/plaid"
)

// Environments accepted by Config.Environment.
const (
	EnvSandbox    = "sandbox"
	EnvProduction = "production"
)

// sandboxInstitutionID is Plaid's "First Platypus Bank" test institution,
// available in every sandbox project.
const sandboxInstitutionID = "ins_109508"

// Config holds Plaid API configuration.
type Config struct {
	ClientID    string
	Secret      string
	Environment string // sandbox or production
	ClientName  string // shown to users in Plaid Link
}

// Validate ensures all required fields are present.
func (c *Config) Validate() error {
	if c.ClientID == "" {
		return fmt.Errorf("plaid client ID is required")
	}
	if c.Secret == "" {
		return fmt.Errorf("plaid secret is required")
	}
	if c.Environment == "" {
		return fmt.Errorf("plaid environment is required")
	}

	validEnvs := map[string]bool{
		EnvSandbox:    true,
		EnvProduction: true,
	}
	if !validEnvs[c.Environment] {
		return fmt.Errorf("invalid Plaid environment: must be sandbox or production")
	}

	return nil
}

// Client implements the ProviderGateway interface.
type Client struct {
	client      *plaid.APIClient
	logger      *slog.Logger
	clientName  string
	environment string
}

// NewClient creates a new Plaid client with the given configuration.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clientName := cfg.ClientName
	if clientName == "" {
		clientName = "Spice Bridge"
	}

	configuration := plaid.NewConfiguration()
	configuration.AddDefaultHeader("PLAID-CLIENT-ID", cfg.ClientID)
	configuration.AddDefaultHeader("PLAID-SECRET", cfg.Secret)

	switch cfg.Environment {
	case EnvSandbox:
		configuration.UseEnvironment(plaid.Sandbox)
	case EnvProduction:
		configuration.UseEnvironment(plaid.Production)
	}

	return &Client{
		client:      plaid.NewAPIClient(configuration),
		clientName:  clientName,
		environment: cfg.Environment,
		logger:      slog.Default().With("component", "plaid"),
	}, nil
}

// CreateLinkToken creates a Link token for Plaid Link initialization.
func (c *Client) CreateLinkToken(ctx context.Context) (string, error) {
	user := plaid.LinkTokenCreateRequestUser{
		ClientUserId: "spice-bridge-user-" + time.Now().Format("20060102150405"),
	}

	request := plaid.NewLinkTokenCreateRequest(
		c.clientName,
		"en",
		[]plaid.CountryCode{plaid.COUNTRYCODE_US},
		user,
	)
	request.SetProducts([]plaid.Products{plaid.PRODUCTS_TRANSACTIONS})

	resp, httpResp, err := c.client.PlaidApi.LinkTokenCreate(ctx).LinkTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", providerError(httpResp, err)
	}

	c.logger.Info("Created link token")
	return resp.GetLinkToken(), nil
}

// ExchangePublicToken exchanges a public token from Link for an access token.
func (c *Client) ExchangePublicToken(ctx context.Context, publicToken string) (string, string, error) {
	request := plaid.NewItemPublicTokenExchangeRequest(publicToken)
	resp, httpResp, err := c.client.PlaidApi.ItemPublicTokenExchange(ctx).ItemPublicTokenExchangeRequest(*request).Execute()
	if err != nil {
		return "", "", providerError(httpResp, err)
	}

	c.logger.Info("Exchanged public token", "item_id", resp.GetItemId())
	return resp.GetAccessToken(), resp.GetItemId(), nil
}

// CreateSandboxPublicToken creates a public token against Plaid's sandbox
// test institution. Rejected outside the sandbox environment; Plaid would
// refuse the call anyway, this just fails it before the network hop.
func (c *Client) CreateSandboxPublicToken(ctx context.Context) (string, error) {
	if c.environment != EnvSandbox {
		return "", &ProviderError{
			Code:       "SANDBOX_ONLY",
			Message:    "sandbox public tokens are only available in the sandbox environment",
			StatusCode: http.StatusBadRequest,
		}
	}

	request := plaid.NewSandboxPublicTokenCreateRequest(
		sandboxInstitutionID,
		[]plaid.Products{plaid.PRODUCTS_TRANSACTIONS},
	)

	resp, httpResp, err := c.client.PlaidApi.SandboxPublicTokenCreate(ctx).SandboxPublicTokenCreateRequest(*request).Execute()
	if err != nil {
		return "", providerError(httpResp, err)
	}

	c.logger.Info("Created sandbox public token", "institution", sandboxInstitutionID)
	return resp.GetPublicToken(), nil
}

// GetTransactions fetches the credential's accounts and all transactions
// within the date range, following Plaid's pagination.
func (c *Client) GetTransactions(ctx context.Context, accessToken string, startDate, endDate time.Time) ([]model.Account, []model.Transaction, error) {
	if ctx == nil {
		return nil, nil, fmt.Errorf("context cannot be nil")
	}
	if accessToken == "" {
		return nil, nil, fmt.Errorf("access token is required")
	}
	if startDate.After(endDate) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}

	c.logger.Info("Fetching transactions from Plaid",
		"start_date", startDate.Format("2006-01-02"),
		"end_date", endDate.Format("2006-01-02"))

	var allTransactions []plaid.Transaction
	var plaidAccounts []plaid.AccountBase
	offset := int32(0)
	const pageSize = int32(500) // Plaid's max page size

	for {
		request := plaid.NewTransactionsGetRequest(
			accessToken,
			startDate.Format("2006-01-02"),
			endDate.Format("2006-01-02"),
		)
		options := plaid.TransactionsGetRequestOptions{
			Count:                          plaid.PtrInt32(pageSize),
			Offset:                         plaid.PtrInt32(offset),
			IncludePersonalFinanceCategory: plaid.PtrBool(true),
		}
		request.SetOptions(options)

		resp, httpResp, err := c.client.PlaidApi.TransactionsGet(ctx).TransactionsGetRequest(*request).Execute()
		if err != nil {
			return nil, nil, providerError(httpResp, err)
		}

		page := resp.GetTransactions()
		allTransactions = append(allTransactions, page...)

		// Accounts are identical on every page; take the first.
		if plaidAccounts == nil {
			plaidAccounts = resp.GetAccounts()
		}

		c.logger.Debug("Fetched transaction batch",
			"count", len(page),
			"offset", offset,
			"total", resp.GetTotalTransactions())

		if len(page) < int(pageSize) {
			break
		}
		offset += pageSize
	}

	c.logger.Info("Fetched all transactions",
		"accounts", len(plaidAccounts),
		"count", len(allTransactions))

	accounts := make([]model.Account, 0, len(plaidAccounts))
	for _, pa := range plaidAccounts {
		accounts = append(accounts, mapPlaidAccount(pa))
	}

	transactions := make([]model.Transaction, 0, len(allTransactions))
	for _, pt := range allTransactions {
		transactions = append(transactions, c.mapPlaidTransaction(pt))
	}

	return accounts, transactions, nil
}

// mapPlaidAccount converts a Plaid account to our internal model.
func mapPlaidAccount(pa plaid.AccountBase) model.Account {
	account := model.Account{
		ID:   pa.GetAccountId(),
		Name: pa.GetName(),
		Type: string(pa.GetType()),
	}

	if subtype, ok := pa.GetSubtypeOk(); ok && subtype != nil {
		account.Subtype = string(*subtype)
	}

	balances := pa.GetBalances()
	if v, ok := balances.GetAvailableOk(); ok && v != nil {
		available := *v
		account.AvailableBalance = &available
	}
	if v, ok := balances.GetCurrentOk(); ok && v != nil {
		current := *v
		account.CurrentBalance = &current
	}
	if v, ok := balances.GetIsoCurrencyCodeOk(); ok && v != nil {
		account.Currency = *v
	}

	return account
}

// mapPlaidTransaction converts a Plaid transaction to our internal model.
func (c *Client) mapPlaidTransaction(pt plaid.Transaction) model.Transaction {
	date, err := time.Parse("2006-01-02", pt.GetDate())
	if err != nil {
		c.logger.Error("Failed to parse transaction date", "date", pt.GetDate(), "error", err)
		date = time.Now()
	}

	merchantName := pt.GetMerchantName()
	if merchantName == "" {
		merchantName = pt.GetName()
	}

	// Prefer Plaid's personal finance category; its primary label leads.
	var categories []string
	if pfc, ok := pt.GetPersonalFinanceCategoryOk(); ok && pfc != nil {
		categories = append(categories, pfc.GetPrimary())
		if detailed := pfc.GetDetailed(); detailed != "" {
			categories = append(categories, detailed)
		}
	} else if legacy := pt.GetCategory(); len(legacy) > 0 {
		categories = legacy
	}

	// Plaid reports positive amounts for money leaving the account. The
	// model convention is the opposite (positive = credit), so negate.
	amount := -pt.GetAmount()

	return model.Transaction{
		Date:         date,
		ID:           pt.GetTransactionId(),
		AccountID:    pt.GetAccountId(),
		Name:         pt.GetName(),
		MerchantName: merchantName,
		Amount:       &amount,
		Categories:   categories,
	}
}

// Ensure Client implements ProviderGateway interface.
var _ ProviderGateway = (*Client)(nil)
