// Package server exposes the bridge's HTTP surface: token lifecycle
// endpoints forwarded to the provider gateway and the analytics endpoints
// computed from freshly fetched data.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/Veraticus/spice-bridge/internal/plaid"
)

// Server wires the provider gateway to the HTTP routes. Handlers hold no
// mutable state; every request fetches, aggregates, and responds.
type Server struct {
	http.Server
	gateway    plaid.ProviderGateway
	logger     *slog.Logger
	windowDays int
}

// New configures routes and timeouts, returning a ready-to-run server.
func New(addr string, gateway plaid.ProviderGateway, windowDays int) *Server {
	s := &Server{
		gateway:    gateway,
		windowDays: windowDays,
		logger:     slog.Default().With("component", "server"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", handleHealth)
	mux.HandleFunc("POST /create_link_token", s.withRequestLog(s.handleCreateLinkToken))
	mux.HandleFunc("POST /exchange_public_token", s.withRequestLog(s.handleExchangePublicToken))
	mux.HandleFunc("POST /create_sandbox_public_token", s.withRequestLog(s.handleCreateSandboxPublicToken))
	mux.HandleFunc("GET /get_analytics/{access_token}", s.withRequestLog(s.handleGetAnalytics))
	mux.HandleFunc("GET /financial_overview/{access_token}", s.withRequestLog(s.handleFinancialOverview))

	s.Server = http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
