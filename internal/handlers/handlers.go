// Package handlers implements HTTP handlers for the bank API.
package handlers

import (
	"log/slog"

	"github.com/felixbank/bank-back/internal/service"
)

// Handler serves all API endpoints.
type Handler struct {
	accountService  service.AccountOpener
	transferService service.MoneyMover
	sweepService    service.Sweeper
	holderService   service.HolderManager
	healthChecker   service.HealthChecker
	defaultCurrency string
	logger          *slog.Logger
}

// NewHandler creates a new Handler with injected service dependencies.
// Requests that omit a currency are read in defaultCurrency.
func NewHandler(
	accountService service.AccountOpener,
	transferService service.MoneyMover,
	sweepService service.Sweeper,
	holderService service.HolderManager,
	healthChecker service.HealthChecker,
	defaultCurrency string,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		accountService:  accountService,
		transferService: transferService,
		sweepService:    sweepService,
		holderService:   holderService,
		healthChecker:   healthChecker,
		defaultCurrency: defaultCurrency,
		logger:          logger,
	}
}
