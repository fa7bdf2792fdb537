// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/service"
)

var _ api.StrictServerInterface = (*Handler)(nil)

// Handler implements the api.StrictServerInterface for all endpoints
type Handler struct {
	ledger        service.Ledger
	accounts      service.AccountManager
	history       service.HistoryReader
	healthChecker service.HealthChecker
	logger        *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
func NewHandler(
	ledger service.Ledger,
	accounts service.AccountManager,
	history service.HistoryReader,
	healthChecker service.HealthChecker,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		ledger:        ledger,
		accounts:      accounts,
		history:       history,
		healthChecker: healthChecker,
		logger:        logger,
	}
}

// RegisterRoutes mounts every endpoint on mux. Parameter and body decoding
// failures are answered with invalid_request.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	strictHandler := api.NewStrictHandlerWithOptions(h, []api.StrictMiddlewareFunc{withRequestMetadata}, api.StrictHTTPServerOptions{
		RequestErrorHandlerFunc:  h.requestError,
		ResponseErrorHandlerFunc: h.responseError,
	})

	api.HandlerWithOptions(strictHandler, api.StdHTTPServerOptions{
		BaseRouter:       mux,
		Middlewares:      []api.MiddlewareFunc{limitRequestBody},
		ErrorHandlerFunc: h.requestError,
	})
}
