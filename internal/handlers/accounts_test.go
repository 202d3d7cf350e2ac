package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/service"
	"github.com/felixbank/bank-back/internal/service/mocks"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testToday = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testHandler(accounts service.AccountOpener, transfers service.MoneyMover, sweeps service.Sweeper, holders service.HolderManager) *Handler {
	return NewHandler(accounts, transfers, sweeps, holders, nil, models.DefaultCurrency, testLogger())
}

func usd(t *testing.T, amount string) models.Money {
	t.Helper()

	value, err := decimal.NewFromString(amount)
	require.NoError(t, err)
	money, err := models.NewMoney(value, models.DefaultCurrency)
	require.NoError(t, err)
	return money
}

func testHolder(t *testing.T) *models.AccountHolder {
	t.Helper()

	holder, err := models.NewAccountHolder(
		"Maya Torres",
		testToday.AddDate(-30, 0, 0),
		models.PersonalData{FirstName: "Maya", LastName: "Torres", PhoneNumber: "+1-555-0100", Email: "maya@example.com"},
		models.Address{Street: "12 Harbor Lane", City: "Portland", PostalCode: "97201", Country: "US"},
		nil,
		testToday,
	)
	require.NoError(t, err)
	return holder
}

func testChecking(t *testing.T, balance string) *models.Checking {
	t.Helper()

	checking, err := models.NewChecking(usd(t, balance), "hashed-secret", testHolder(t), nil, testToday)
	require.NoError(t, err)
	return checking
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestCreateCheckingAccount_Success(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	checking := testChecking(t, "1500")
	ownerID := checking.PrimaryOwner.ID

	mockAccounts.On("OpenChecking", mock.Anything, mock.MatchedBy(func(req service.OpenCheckingRequest) bool {
		return req.PrimaryOwnerID == ownerID && req.Balance.StringFixed() == "1500.00"
	})).Return(checking, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/checking",
		strings.NewReader(`{"balance":{"amount":"1500","currency":"USD"},"secret_key":"hunter2","primary_owner_id":"`+ownerID.String()+`"}`))
	rec := httptest.NewRecorder()

	handler.CreateCheckingAccount(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "CHECKING", body["type"])
	assert.Equal(t, "ACTIVE", body["status"])
	assert.Equal(t, checking.ID.String(), body["id"])
	balance := body["balance"].(map[string]any)
	assert.Equal(t, "1500.00", balance["amount"])
	minBalance := body["minimum_balance"].(map[string]any)
	assert.Equal(t, "250.00", minBalance["amount"])
}

func TestCreateCheckingAccount_DefaultCurrencyApplied(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	checking := testChecking(t, "1500")

	mockAccounts.On("OpenChecking", mock.Anything, mock.MatchedBy(func(req service.OpenCheckingRequest) bool {
		return req.Balance.Currency == models.DefaultCurrency
	})).Return(checking, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/checking",
		strings.NewReader(`{"balance":{"amount":"1500"},"secret_key":"hunter2","primary_owner_id":"`+checking.PrimaryOwner.ID.String()+`"}`))
	rec := httptest.NewRecorder()

	handler.CreateCheckingAccount(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestCreateCheckingAccount_ServiceErrors(t *testing.T) {
	tests := []struct {
		name           string
		serviceErr     error
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "eligibility violation returns 400",
			serviceErr:     models.NewError(models.ErrCodeEligibilityViolation, "owner is 30"),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "eligibility_violation",
		},
		{
			name:           "unknown owner returns 404",
			serviceErr:     models.NewError(models.ErrCodeNotFound, "owner not found"),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
		{
			name:           "uncoded error returns 500 with masked message",
			serviceErr:     io.ErrUnexpectedEOF,
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockAccounts := mocks.NewMockAccountOpener(t)
			handler := testHandler(mockAccounts, nil, nil, nil)

			mockAccounts.On("OpenChecking", mock.Anything, mock.Anything).Return(nil, tt.serviceErr)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/checking",
				strings.NewReader(`{"balance":{"amount":"100","currency":"USD"},"secret_key":"hunter2","primary_owner_id":"`+uuid.NewString()+`"}`))
			rec := httptest.NewRecorder()

			handler.CreateCheckingAccount(rec, req)

			require.Equal(t, tt.expectedStatus, rec.Code)
			body := decodeResponse(t, rec)
			assert.Equal(t, tt.expectedCode, body["error"])
			if tt.expectedCode == "internal_error" {
				assert.Equal(t, "internal error", body["message"], "internal details must not leak")
			}
		})
	}
}

func TestCreateCheckingAccount_RejectsUnknownFields(t *testing.T) {
	handler := testHandler(mocks.NewMockAccountOpener(t), nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/checking",
		strings.NewReader(`{"balance":{"amount":"100"},"secret_key":"hunter2","primary_owner_id":"`+uuid.NewString()+`","surprise":true}`))
	rec := httptest.NewRecorder()

	handler.CreateCheckingAccount(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "validation_range", body["error"])
}

func TestCreateCreditCardAccount_RequiresCreditLimit(t *testing.T) {
	handler := testHandler(mocks.NewMockAccountOpener(t), nil, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/credit-cards",
		strings.NewReader(`{"balance":{"amount":"0"},"secret_key":"hunter2","primary_owner_id":"`+uuid.NewString()+`"}`))
	rec := httptest.NewRecorder()

	handler.CreateCreditCardAccount(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "validation_range", body["error"])
	assert.Contains(t, body["message"], "credit_limit")
}

func TestGetAccount_InvalidID(t *testing.T) {
	handler := testHandler(mocks.NewMockAccountOpener(t), nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/not-a-uuid", nil)
	req.SetPathValue("id", "not-a-uuid")
	rec := httptest.NewRecorder()

	handler.GetAccount(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetAccountBalance_PassesSecretKey(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	checking := testChecking(t, "1500")
	mockAccounts.On("GetAccountAuthorized", mock.Anything, checking.ID, "hunter2").Return(checking, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts/"+checking.ID.String()+"/balance", nil)
	req.SetPathValue("id", checking.ID.String())
	req.Header.Set("X-Secret-Key", "hunter2")
	rec := httptest.NewRecorder()

	handler.GetAccountBalance(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "1500.00", body["amount"])
	assert.Equal(t, "USD", body["currency"])
}

func TestListAccounts_RequiresFilter(t *testing.T) {
	handler := testHandler(mocks.NewMockAccountOpener(t), nil, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts", nil)
	rec := httptest.NewRecorder()

	handler.ListAccounts(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "validation_range", body["error"])
}

func TestListAccounts_ByOwner(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	checking := testChecking(t, "1500")
	ownerID := checking.PrimaryOwner.ID
	mockAccounts.On("ListByOwner", mock.Anything, ownerID).Return([]models.Account{checking}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/accounts?owner_id="+ownerID.String(), nil)
	rec := httptest.NewRecorder()

	handler.ListAccounts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, checking.ID.String(), body[0]["id"])
}

func TestUpdateAccountStatus_Success(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	checking := testChecking(t, "1500")
	checking.Status = models.AccountStatusFrozen
	mockAccounts.On("SetAccountStatus", mock.Anything, checking.ID, models.AccountStatusFrozen).Return(checking, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/accounts/"+checking.ID.String()+"/status",
		strings.NewReader(`{"status":"FROZEN"}`))
	req.SetPathValue("id", checking.ID.String())
	rec := httptest.NewRecorder()

	handler.UpdateAccountStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(t, rec)
	assert.Equal(t, "FROZEN", body["status"])
}

func TestDeleteAccount_NoContent(t *testing.T) {
	mockAccounts := mocks.NewMockAccountOpener(t)
	handler := testHandler(mockAccounts, nil, nil, nil)

	id := uuid.New()
	mockAccounts.On("DeleteAccount", mock.Anything, id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/accounts/"+id.String(), nil)
	req.SetPathValue("id", id.String())
	rec := httptest.NewRecorder()

	handler.DeleteAccount(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}
