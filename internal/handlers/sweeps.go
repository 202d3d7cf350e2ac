package handlers

import (
	"context"
	"net/http"

	"github.com/felixbank/bank-back/internal/service"
)

// CreatePenaltySweep handles POST /api/v1/sweeps/penalties
//
// Charges the flat penalty on every checking and savings account below
// its minimum balance. There is no cool-down: re-running the sweep
// before balances recover charges again.
func (h *Handler) CreatePenaltySweep(w http.ResponseWriter, r *http.Request) {
	h.runSweep(w, r, h.sweepService.ApplyLowBalancePenalties)
}

// CreateStudentOverdraftSweep handles POST /api/v1/sweeps/student-overdrafts
func (h *Handler) CreateStudentOverdraftSweep(w http.ResponseWriter, r *http.Request) {
	h.runSweep(w, r, h.sweepService.ApplyStudentOverdraftPenalties)
}

// CreateMaintenanceFeeSweep handles POST /api/v1/sweeps/maintenance-fees
func (h *Handler) CreateMaintenanceFeeSweep(w http.ResponseWriter, r *http.Request) {
	h.runSweep(w, r, h.sweepService.ApplyMaintenanceFees)
}

// CreateSavingsInterestSweep handles POST /api/v1/sweeps/savings-interest
func (h *Handler) CreateSavingsInterestSweep(w http.ResponseWriter, r *http.Request) {
	h.runSweep(w, r, h.sweepService.ApplySavingsInterest)
}

// CreateCreditCardInterestSweep handles POST /api/v1/sweeps/credit-card-interest
func (h *Handler) CreateCreditCardInterestSweep(w http.ResponseWriter, r *http.Request) {
	h.runSweep(w, r, h.sweepService.ApplyCreditCardInterest)
}

func (h *Handler) runSweep(
	w http.ResponseWriter,
	r *http.Request,
	sweep func(ctx context.Context) (*service.SweepResult, error),
) {
	result, err := sweep(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := sweepResponse{
		Evaluated: len(result.Accounts),
		Applied:   result.Applied,
		Accounts:  make([]accountResponse, 0, len(result.Accounts)),
	}
	for _, account := range result.Accounts {
		resp.Accounts = append(resp.Accounts, toAccountResponse(account))
	}
	for _, failure := range result.Errors {
		resp.Failures = append(resp.Failures, sweepFailure{
			AccountID: failure.AccountID,
			Message:   failure.Err.Error(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
