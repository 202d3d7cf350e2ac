package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
	"github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// errorResponse is the wire shape of every error the API returns.
type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// moneyDTO carries an exact decimal amount as a string, never a float.
type moneyDTO struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

func toMoneyDTO(m models.Money) moneyDTO {
	return moneyDTO{Amount: m.StringFixed(), Currency: m.Currency}
}

// accountResponse is the wire shape of an account. Variant-specific
// fields are omitted for variants they do not apply to.
type accountResponse struct {
	ID                    uuid.UUID  `json:"id"`
	Type                  string     `json:"type"`
	Status                string     `json:"status"`
	Balance               moneyDTO   `json:"balance"`
	PenaltyFee            moneyDTO   `json:"penalty_fee"`
	CreationDate          types.Date `json:"creation_date"`
	PrimaryOwnerID        uuid.UUID  `json:"primary_owner_id"`
	SecondaryOwnerID      *uuid.UUID `json:"secondary_owner_id,omitempty"`
	MinimumBalance        *moneyDTO  `json:"minimum_balance,omitempty"`
	MonthlyMaintenanceFee *moneyDTO  `json:"monthly_maintenance_fee,omitempty"`
	InterestRate          *string    `json:"interest_rate,omitempty"`
	CreditLimit           *moneyDTO  `json:"credit_limit,omitempty"`
	AvailableCredit       *moneyDTO  `json:"available_credit,omitempty"`
	CreditUtilization     *string    `json:"credit_utilization,omitempty"`
}

func toAccountResponse(account models.Account) accountResponse {
	record := account.Record()
	resp := accountResponse{
		ID:             record.ID,
		Type:           string(account.Type()),
		Status:         string(record.Status),
		Balance:        toMoneyDTO(record.Balance),
		PenaltyFee:     toMoneyDTO(record.PenaltyFee),
		CreationDate:   types.Date{Time: record.CreationDate},
		PrimaryOwnerID: record.PrimaryOwner.ID,
	}
	if record.SecondaryOwner != nil {
		resp.SecondaryOwnerID = &record.SecondaryOwner.ID
	}

	switch a := account.(type) {
	case *models.Checking:
		minBalance := toMoneyDTO(a.MinBalance)
		fee := toMoneyDTO(a.MonthlyMaintenanceFee)
		resp.MinimumBalance = &minBalance
		resp.MonthlyMaintenanceFee = &fee
	case *models.Savings:
		minBalance := toMoneyDTO(a.MinBalance)
		rate := a.InterestRate.String()
		resp.MinimumBalance = &minBalance
		resp.InterestRate = &rate
	case *models.CreditCard:
		limit := toMoneyDTO(a.CreditLimit)
		available := toMoneyDTO(a.AvailableCredit())
		rate := a.InterestRate.String()
		utilization := a.CreditUtilizationPercentage().String()
		resp.CreditLimit = &limit
		resp.AvailableCredit = &available
		resp.InterestRate = &rate
		resp.CreditUtilization = &utilization
	}
	return resp
}

// holderResponse is the wire shape of an account holder.
type holderResponse struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	DateOfBirth    types.Date          `json:"date_of_birth"`
	PersonalData   models.PersonalData `json:"personal_data"`
	PrimaryAddress models.Address      `json:"primary_address"`
	MailingAddress *models.Address     `json:"mailing_address,omitempty"`
	Role           string              `json:"role"`
	Status         string              `json:"status"`
}

func toHolderResponse(holder *models.AccountHolder) holderResponse {
	return holderResponse{
		ID:             holder.ID,
		Name:           holder.Name,
		DateOfBirth:    types.Date{Time: holder.DateOfBirth},
		PersonalData:   holder.PersonalData,
		PrimaryAddress: holder.PrimaryAddress,
		MailingAddress: holder.MailingAddress,
		Role:           string(holder.Role),
		Status:         string(holder.Status),
	}
}

// sweepResponse is the wire shape of a batch evaluation result.
type sweepResponse struct {
	Evaluated int               `json:"evaluated"`
	Applied   int               `json:"applied"`
	Accounts  []accountResponse `json:"accounts"`
	Failures  []sweepFailure    `json:"failures,omitempty"`
}

type sweepFailure struct {
	AccountID uuid.UUID `json:"account_id"`
	Message   string    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body) //nolint:errcheck // Nothing useful to do if write fails
}

// writeError translates a service error into its HTTP shape. Errors
// without a known code are masked as internal errors.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	code := models.ErrorCode(err)

	message := err.Error()
	if code == models.ErrCodeInternalError {
		h.logger.Error("request failed", "error", err)
		message = "internal error"
	}

	writeJSON(w, statusForCode(code), errorResponse{Error: code, Message: message})
}

func statusForCode(code string) int {
	switch code {
	case models.ErrCodeInvalidAmount,
		models.ErrCodeCurrencyMismatch,
		models.ErrCodeValidationRange,
		models.ErrCodeEligibilityViolation:
		return http.StatusBadRequest
	case models.ErrCodeInsufficientFunds:
		return http.StatusPaymentRequired
	case models.ErrCodeAccountInactive:
		return http.StatusConflict
	case models.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// decodeBody decodes a JSON request body, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return models.NewError(models.ErrCodeValidationRange, "invalid request body: %v", err)
	}
	return nil
}

// parseMoney builds a Money value from its wire shape. An empty
// currency selects the configured bank default.
func (h *Handler) parseMoney(dto moneyDTO) (models.Money, error) {
	amount, err := decimal.NewFromString(dto.Amount)
	if err != nil {
		return models.Money{}, models.NewError(models.ErrCodeInvalidAmount, "invalid amount %q", dto.Amount)
	}
	currency := dto.Currency
	if currency == "" {
		currency = h.defaultCurrency
	}
	return models.NewMoney(amount, currency)
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return uuid.Nil, models.NewError(models.ErrCodeNotFound, "invalid id %q", r.PathValue("id"))
	}
	return id, nil
}
