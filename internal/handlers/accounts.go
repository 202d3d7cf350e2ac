package handlers

import (
	"context"
	"net/http"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/service"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// secretKeyHeader authenticates balance lookups by account secret key.
const secretKeyHeader = "X-Secret-Key"

// openAccountRequest is the wire shape for opening any account variant.
// InterestRate and CreditLimit only apply to the variants that have
// them; absent values select the documented defaults.
type openAccountRequest struct {
	Balance          moneyDTO   `json:"balance"`
	SecretKey        string     `json:"secret_key"`
	PrimaryOwnerID   uuid.UUID  `json:"primary_owner_id"`
	SecondaryOwnerID *uuid.UUID `json:"secondary_owner_id,omitempty"`
	InterestRate     *string    `json:"interest_rate,omitempty"`
	CreditLimit      *moneyDTO  `json:"credit_limit,omitempty"`
}

// CreateCheckingAccount handles POST /api/v1/accounts/checking
func (h *Handler) CreateCheckingAccount(w http.ResponseWriter, r *http.Request) {
	h.openChecking(w, r, h.accountService.OpenChecking)
}

// CreateStudentCheckingAccount handles POST /api/v1/accounts/student-checking
func (h *Handler) CreateStudentCheckingAccount(w http.ResponseWriter, r *http.Request) {
	h.openChecking(w, r, h.accountService.OpenStudentChecking)
}

func (h *Handler) openChecking(
	w http.ResponseWriter,
	r *http.Request,
	open func(ctx context.Context, req service.OpenCheckingRequest) (models.Account, error),
) {
	var req openAccountRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	balance, err := h.parseMoney(req.Balance)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := open(r.Context(), service.OpenCheckingRequest{
		Balance:          balance,
		SecretKey:        req.SecretKey,
		PrimaryOwnerID:   req.PrimaryOwnerID,
		SecondaryOwnerID: req.SecondaryOwnerID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// CreateSavingsAccount handles POST /api/v1/accounts/savings
func (h *Handler) CreateSavingsAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	balance, err := h.parseMoney(req.Balance)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rate, err := parseOptionalRate(req.InterestRate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := h.accountService.OpenSavings(r.Context(), service.OpenSavingsRequest{
		Balance:          balance,
		SecretKey:        req.SecretKey,
		PrimaryOwnerID:   req.PrimaryOwnerID,
		SecondaryOwnerID: req.SecondaryOwnerID,
		InterestRate:     rate,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// CreateCreditCardAccount handles POST /api/v1/accounts/credit-cards
func (h *Handler) CreateCreditCardAccount(w http.ResponseWriter, r *http.Request) {
	var req openAccountRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	balance, err := h.parseMoney(req.Balance)
	if err != nil {
		h.writeError(w, err)
		return
	}
	if req.CreditLimit == nil {
		h.writeError(w, models.NewError(models.ErrCodeValidationRange, "credit_limit is required"))
		return
	}
	limit, err := h.parseMoney(*req.CreditLimit)
	if err != nil {
		h.writeError(w, err)
		return
	}
	rate, err := parseOptionalRate(req.InterestRate)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := h.accountService.OpenCreditCard(r.Context(), service.OpenCreditCardRequest{
		Balance:          balance,
		SecretKey:        req.SecretKey,
		PrimaryOwnerID:   req.PrimaryOwnerID,
		SecondaryOwnerID: req.SecondaryOwnerID,
		CreditLimit:      limit,
		InterestRate:     rate,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAccountResponse(account))
}

// GetAccount handles GET /api/v1/accounts/{id}
func (h *Handler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := h.accountService.GetAccount(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// GetAccountBalance handles GET /api/v1/accounts/{id}/balance
//
// The caller proves ownership with the account secret key.
func (h *Handler) GetAccountBalance(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := h.accountService.GetAccountAuthorized(r.Context(), id, r.Header.Get(secretKeyHeader))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMoneyDTO(account.Record().Balance))
}

// ListAccounts handles GET /api/v1/accounts
//
// Supports filtering by exactly one of owner_id, status, or type.
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var (
		accounts []models.Account
		err      error
	)
	switch {
	case query.Get("owner_id") != "":
		var ownerID uuid.UUID
		ownerID, err = uuid.Parse(query.Get("owner_id"))
		if err != nil {
			h.writeError(w, models.NewError(models.ErrCodeValidationRange, "invalid owner_id %q", query.Get("owner_id")))
			return
		}
		accounts, err = h.accountService.ListByOwner(r.Context(), ownerID)
	case query.Get("status") != "":
		accounts, err = h.accountService.ListByStatus(r.Context(), models.AccountStatus(query.Get("status")))
	case query.Get("type") != "":
		accounts, err = h.accountService.ListByType(r.Context(), models.AccountType(query.Get("type")))
	default:
		h.writeError(w, models.NewError(models.ErrCodeValidationRange, "one of owner_id, status, or type is required"))
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}

	responses := make([]accountResponse, 0, len(accounts))
	for _, account := range accounts {
		responses = append(responses, toAccountResponse(account))
	}
	writeJSON(w, http.StatusOK, responses)
}

// UpdateAccountStatus handles PATCH /api/v1/accounts/{id}/status
func (h *Handler) UpdateAccountStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	account, err := h.accountService.SetAccountStatus(r.Context(), id, models.AccountStatus(req.Status))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// DeleteAccount handles DELETE /api/v1/accounts/{id}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.accountService.DeleteAccount(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func parseOptionalRate(raw *string) (decimal.Decimal, error) {
	if raw == nil {
		return decimal.Zero, nil
	}
	rate, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.Decimal{}, models.NewError(models.ErrCodeValidationRange, "invalid interest_rate %q", *raw)
	}
	return rate, nil
}
