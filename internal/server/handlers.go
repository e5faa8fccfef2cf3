package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Veraticus/spice-bridge/internal/analytics"
	"github.com/Veraticus/spice-bridge/internal/model"
)

// handleCreateLinkToken starts the account-linking flow.
func (s *Server) handleCreateLinkToken(w http.ResponseWriter, r *http.Request) {
	linkToken, err := s.gateway.CreateLinkToken(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"link_token": linkToken})
}

// handleExchangePublicToken trades a Link public token for an access token.
func (s *Server) handleExchangePublicToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PublicToken string `json:"public_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PublicToken == "" {
		s.writeJSON(w, http.StatusBadRequest, errorBody("public_token is required"))
		return
	}

	accessToken, itemID, err := s.gateway.ExchangePublicToken(r.Context(), req.PublicToken)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{
		"access_token": accessToken,
		"item_id":      itemID,
	})
}

// handleCreateSandboxPublicToken creates a test public token without Link.
func (s *Server) handleCreateSandboxPublicToken(w http.ResponseWriter, r *http.Request) {
	publicToken, err := s.gateway.CreateSandboxPublicToken(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"public_token": publicToken})
}

// handleGetAnalytics serves the full analytics payload for one credential.
func (s *Server) handleGetAnalytics(w http.ResponseWriter, r *http.Request) {
	accounts, transactions, err := s.fetchWindow(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	report, err := analytics.Analyze(accounts, transactions)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, report)
}

// handleFinancialOverview serves the combined overview summary.
func (s *Server) handleFinancialOverview(w http.ResponseWriter, r *http.Request) {
	accounts, transactions, err := s.fetchWindow(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	summary, err := analytics.Summarize(accounts, transactions)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, summary)
}

// fetchWindow pulls the request credential's accounts and transactions for
// the trailing analysis window.
func (s *Server) fetchWindow(r *http.Request) ([]model.Account, []model.Transaction, error) {
	accessToken := r.PathValue("access_token")

	endDate := time.Now()
	startDate := endDate.AddDate(0, 0, -s.windowDays)

	return s.gateway.GetTransactions(r.Context(), accessToken, startDate, endDate)
}
