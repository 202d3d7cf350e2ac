package handlers

import (
	"net/http"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/service"
	"github.com/oapi-codegen/runtime/types"
)

type createHolderRequest struct {
	Name           string              `json:"name"`
	DateOfBirth    types.Date          `json:"date_of_birth"`
	PersonalData   models.PersonalData `json:"personal_data"`
	PrimaryAddress models.Address      `json:"primary_address"`
	MailingAddress *models.Address     `json:"mailing_address,omitempty"`
}

// CreateHolder handles POST /api/v1/holders
func (h *Handler) CreateHolder(w http.ResponseWriter, r *http.Request) {
	var req createHolderRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, err)
		return
	}

	holder, err := h.holderService.CreateHolder(r.Context(), service.CreateHolderRequest{
		Name:           req.Name,
		DateOfBirth:    req.DateOfBirth.Time,
		PersonalData:   req.PersonalData,
		PrimaryAddress: req.PrimaryAddress,
		MailingAddress: req.MailingAddress,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toHolderResponse(holder))
}

// GetHolder handles GET /api/v1/holders/{id}
func (h *Handler) GetHolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	holder, err := h.holderService.GetHolder(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toHolderResponse(holder))
}

// ListHolders handles GET /api/v1/holders
func (h *Handler) ListHolders(w http.ResponseWriter, r *http.Request) {
	holders, err := h.holderService.ListHolders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}

	responses := make([]holderResponse, 0, len(holders))
	for _, holder := range holders {
		responses = append(responses, toHolderResponse(holder))
	}
	writeJSON(w, http.StatusOK, responses)
}

// DeleteHolder handles DELETE /api/v1/holders/{id}
func (h *Handler) DeleteHolder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if err := h.holderService.DeleteHolder(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListHolderAccounts handles GET /api/v1/holders/{id}/accounts
func (h *Handler) ListHolderAccounts(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, err)
		return
	}

	// Resolve the holder first so an unknown id is a 404, not an empty
	// list.
	if _, err := h.holderService.GetHolder(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	accounts, err := h.accountService.ListByOwner(r.Context(), id)
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
