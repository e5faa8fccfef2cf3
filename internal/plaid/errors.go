package plaid

import (
	"fmt"
	"net/http"

	"github.com/plaid/plaid-go/v20/plaid"
)

// ProviderError is a rejection from the Plaid API. It carries the
// provider's error code and message plus the upstream HTTP status so the
// server can forward both to the caller. Provider errors are never retried
// here; retrying is the caller's decision.
type ProviderError struct {
	Code       string
	Message    string
	StatusCode int
}

func (e *ProviderError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("plaid API error: %s", e.Message)
	}
	return fmt.Sprintf("plaid API error: %s - %s", e.Code, e.Message)
}

// providerError converts an SDK error into a ProviderError, preserving the
// upstream status when the response carried one.
func providerError(resp *http.Response, err error) error {
	status := http.StatusBadGateway
	if resp != nil && resp.StatusCode >= http.StatusBadRequest {
		status = resp.StatusCode
	}

	if plaidErr, convErr := plaid.ToPlaidError(err); convErr == nil {
		return &ProviderError{
			Code:       plaidErr.ErrorCode,
			Message:    plaidErr.ErrorMessage,
			StatusCode: status,
		}
	}

	return &ProviderError{
		Message:    err.Error(),
		StatusCode: status,
	}
}
