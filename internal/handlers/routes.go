package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/benx421/personal-bank/internal/api"
	"github.com/benx421/personal-bank/internal/config"
	"github.com/benx421/personal-bank/internal/db"
	"github.com/benx421/personal-bank/internal/events"
	"github.com/benx421/personal-bank/internal/ids"
	"github.com/benx421/personal-bank/internal/lock"
	"github.com/benx421/personal-bank/internal/middleware"
	"github.com/benx421/personal-bank/internal/repository"
	"github.com/benx421/personal-bank/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	locker lock.Locker,
	publisher events.Publisher,
	logger *slog.Logger,
) (http.Handler, error) {
	store := repository.NewStore(database)
	generator := ids.NewGenerator()

	ledgerService := service.NewLedgerService(store, locker, publisher, generator, cfg.Ledger.OperationTimeout, logger)
	accountService := service.NewAccountService(
		store, generator, generator, publisher,
		cfg.Ledger.AccountNumberAttempts, cfg.Ledger.OperationTimeout, logger,
	)
	historyService := service.NewHistoryService(store, logger)

	handler := NewHandler(ledgerService, accountService, historyService, database, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)
	handler.RegisterRoutes(mux)

	doc, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}
	validation, err := middleware.RequestValidation(doc, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to set up request validation: %w", err)
	}

	var finalHandler http.Handler = mux

	finalHandler = validation(finalHandler)

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)

	finalHandler = middleware.Identity(logger)(finalHandler)

	return finalHandler, nil
}
