package handlers

import (
	"log/slog"
	"net/http"

	"github.com/felixbank/bank-back/internal/api"
	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/config"
	"github.com/felixbank/bank-back/internal/db"
	"github.com/felixbank/bank-back/internal/middleware"
	"github.com/felixbank/bank-back/internal/repository"
	"github.com/felixbank/bank-back/internal/service"
)

// NewRouter creates and configures the HTTP router with all routes and middleware.
func NewRouter(
	database *db.DB,
	cfg *config.Config,
	clk clock.Clock,
	logger *slog.Logger,
) http.Handler {
	accountStore := repository.NewAccountStore(database)
	holderRepo := repository.NewHolderRepository(database)

	accountService := service.NewAccountService(accountStore, holderRepo, clk, logger)
	transferService := service.NewTransferService(accountStore, logger)
	sweepService := service.NewSweepService(accountStore, clk, logger)
	holderService := service.NewHolderService(holderRepo, clk, logger)

	handler := NewHandler(accountService, transferService, sweepService, holderService, database, cfg.App.DefaultCurrency, logger)

	mux := http.NewServeMux()
	api.RegisterDocsRoutes(mux)

	mux.HandleFunc("GET /health", handler.GetHealth)

	mux.HandleFunc("POST /api/v1/holders", handler.CreateHolder)
	mux.HandleFunc("GET /api/v1/holders", handler.ListHolders)
	mux.HandleFunc("GET /api/v1/holders/{id}", handler.GetHolder)
	mux.HandleFunc("DELETE /api/v1/holders/{id}", handler.DeleteHolder)
	mux.HandleFunc("GET /api/v1/holders/{id}/accounts", handler.ListHolderAccounts)

	mux.HandleFunc("POST /api/v1/accounts/checking", handler.CreateCheckingAccount)
	mux.HandleFunc("POST /api/v1/accounts/student-checking", handler.CreateStudentCheckingAccount)
	mux.HandleFunc("POST /api/v1/accounts/savings", handler.CreateSavingsAccount)
	mux.HandleFunc("POST /api/v1/accounts/credit-cards", handler.CreateCreditCardAccount)
	mux.HandleFunc("GET /api/v1/accounts", handler.ListAccounts)
	mux.HandleFunc("GET /api/v1/accounts/{id}", handler.GetAccount)
	mux.HandleFunc("GET /api/v1/accounts/{id}/balance", handler.GetAccountBalance)
	mux.HandleFunc("PATCH /api/v1/accounts/{id}/status", handler.UpdateAccountStatus)
	mux.HandleFunc("DELETE /api/v1/accounts/{id}", handler.DeleteAccount)

	mux.HandleFunc("POST /api/v1/accounts/{id}/deposits", handler.CreateDeposit)
	mux.HandleFunc("POST /api/v1/accounts/{id}/withdrawals", handler.CreateWithdrawal)
	mux.HandleFunc("POST /api/v1/transfers", handler.CreateTransfer)

	mux.HandleFunc("POST /api/v1/sweeps/penalties", handler.CreatePenaltySweep)
	mux.HandleFunc("POST /api/v1/sweeps/student-overdrafts", handler.CreateStudentOverdraftSweep)
	mux.HandleFunc("POST /api/v1/sweeps/maintenance-fees", handler.CreateMaintenanceFeeSweep)
	mux.HandleFunc("POST /api/v1/sweeps/savings-interest", handler.CreateSavingsInterestSweep)
	mux.HandleFunc("POST /api/v1/sweeps/credit-card-interest", handler.CreateCreditCardInterestSweep)

	var finalHandler http.Handler = mux

	idempotencyRepo := repository.NewIdempotencyRepository(database)
	finalHandler = middleware.Idempotency(idempotencyRepo, logger)(finalHandler)
	finalHandler = middleware.RequestLogging(logger)(finalHandler)

	return finalHandler
}
