package handlers

import (
	"context"
	"net/http"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
)

type movementRequest struct {
	Amount moneyDTO `json:"amount"`
}

type transferRequest struct {
	FromAccountID uuid.UUID `json:"from_account_id"`
	ToAccountID   uuid.UUID `json:"to_account_id"`
	Amount        moneyDTO  `json:"amount"`
}

// CreateDeposit handles POST /api/v1/accounts/{id}/deposits
func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	h.moveMoney(w, r, h.transferService.Deposit)
}

// CreateWithdrawal handles POST /api/v1/accounts/{id}/withdrawals
func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	h.moveMoney(w, r, h.transferService.Withdraw)
}

func (h *Handler) moveMoney(
	w http.ResponseWriter,
	r *http.Request,
	move func(ctx context.Context, accountID uuid.UUID, amount models.Money) (models.Account, error),
) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	var req movementRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	amount, err := h.parseMoney(req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	account, err := move(r.Context(), id, amount)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// CreateTransfer handles POST /api/v1/transfers
func (h *Handler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req transferRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}
	amount, err := h.parseMoney(req.Amount)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.transferService.Transfer(r.Context(), req.FromAccountID, req.ToAccountID, amount); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
