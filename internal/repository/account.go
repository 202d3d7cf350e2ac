// Package repository provides data access layer implementations for the
// bank accounts and their owners.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Querier is satisfied by *db.DB and *sql.Tx, so repositories work both
// standalone and inside a transaction.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// AccountStore defines the collaborator contract the rule evaluator and
// account services pull candidate accounts from. Date-due queries take
// "today" explicitly so the clock stays injectable.
type AccountStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (models.Account, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error)
	FindByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error)
	FindByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error)
	// FindDueForPenalty returns Checking and Savings accounts whose
	// balance is below their minimum balance.
	FindDueForPenalty(ctx context.Context) ([]models.Account, error)
	// FindOverdrawnStudents returns StudentChecking accounts with a
	// negative balance.
	FindOverdrawnStudents(ctx context.Context) ([]models.Account, error)
	// FindDueForMaintenance returns Checking accounts whose monthly
	// maintenance fee is due as of today.
	FindDueForMaintenance(ctx context.Context, today time.Time) ([]models.Account, error)
	// FindDueForInterest returns Savings or CreditCard accounts whose
	// interest is due as of today.
	FindDueForInterest(ctx context.Context, accountType models.AccountType, today time.Time) ([]models.Account, error)
	Save(ctx context.Context, account models.Account) error
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type accountStore struct {
	db Querier
}

// NewAccountStore creates an AccountStore backed by the given database
// handle or transaction.
func NewAccountStore(db Querier) AccountStore {
	return &accountStore{db: db}
}

// Accounts live in a single table with an account_type discriminator;
// variant-specific columns are nullable.
const accountColumns = `
	id, account_type, balance_amount, balance_currency, secret_key,
	creation_date, status, penalty_fee_amount,
	primary_owner_id, secondary_owner_id,
	minimum_balance_amount, monthly_maintenance_fee_amount, last_maintenance_fee_date,
	interest_rate, credit_limit_amount, last_interest_date
`

func (r *accountStore) FindByID(ctx context.Context, id uuid.UUID) (models.Account, error) {
	accounts, err := r.query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, models.NewError(models.ErrCodeNotFound, "account %s not found", id)
	}
	return accounts[0], nil
}

func (r *accountStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE primary_owner_id = $1 OR secondary_owner_id = $1
		ORDER BY creation_date`
	return r.query(ctx, query, ownerID)
}

func (r *accountStore) FindByStatus(ctx context.Context, status models.AccountStatus) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE status = $1 ORDER BY creation_date`
	return r.query(ctx, query, status)
}

func (r *accountStore) FindByType(ctx context.Context, accountType models.AccountType) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_type = $1 ORDER BY creation_date`
	return r.query(ctx, query, accountType)
}

func (r *accountStore) FindDueForPenalty(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE account_type IN ($1, $2) AND balance_amount < minimum_balance_amount
		ORDER BY creation_date`
	return r.query(ctx, query, models.AccountTypeChecking, models.AccountTypeSavings)
}

func (r *accountStore) FindOverdrawnStudents(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE account_type = $1 AND balance_amount < 0
		ORDER BY creation_date`
	return r.query(ctx, query, models.AccountTypeStudentChecking)
}

func (r *accountStore) FindDueForMaintenance(ctx context.Context, today time.Time) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE account_type = $1
		  AND (last_maintenance_fee_date IS NULL OR last_maintenance_fee_date + INTERVAL '1 month' < $2)
		ORDER BY creation_date`
	return r.query(ctx, query, models.AccountTypeChecking, today)
}

func (r *accountStore) FindDueForInterest(ctx context.Context, accountType models.AccountType, today time.Time) ([]models.Account, error) {
	var period string
	switch accountType {
	case models.AccountTypeSavings:
		period = "1 year"
	case models.AccountTypeCreditCard:
		period = "1 month"
	default:
		return nil, models.NewError(models.ErrCodeValidationRange, "account type %s does not accrue interest", accountType)
	}

	query := `SELECT ` + accountColumns + ` FROM accounts
		WHERE account_type = $1
		  AND (last_interest_date IS NULL OR last_interest_date + INTERVAL '` + period + `' < $2)
		ORDER BY creation_date`
	return r.query(ctx, query, accountType, today)
}

// Save upserts the full account row so a sweep's fee/interest mutation
// and its date stamp always persist together.
func (r *accountStore) Save(ctx context.Context, account models.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (id) DO UPDATE SET
			balance_amount = EXCLUDED.balance_amount,
			status = EXCLUDED.status,
			penalty_fee_amount = EXCLUDED.penalty_fee_amount,
			secondary_owner_id = EXCLUDED.secondary_owner_id,
			minimum_balance_amount = EXCLUDED.minimum_balance_amount,
			monthly_maintenance_fee_amount = EXCLUDED.monthly_maintenance_fee_amount,
			last_maintenance_fee_date = EXCLUDED.last_maintenance_fee_date,
			interest_rate = EXCLUDED.interest_rate,
			credit_limit_amount = EXCLUDED.credit_limit_amount,
			last_interest_date = EXCLUDED.last_interest_date,
			updated_at = NOW()
	`

	rec := account.Record()

	var secondaryOwnerID any
	if rec.SecondaryOwner != nil {
		secondaryOwnerID = rec.SecondaryOwner.ID
	}

	var (
		minimumBalance     decimal.NullDecimal
		maintenanceFee     decimal.NullDecimal
		lastMaintenanceFee sql.NullTime
		interestRate       decimal.NullDecimal
		creditLimit        decimal.NullDecimal
		lastInterest       sql.NullTime
	)

	switch acc := account.(type) {
	case *models.Checking:
		minimumBalance = decimal.NewNullDecimal(acc.MinBalance.Amount)
		maintenanceFee = decimal.NewNullDecimal(acc.MonthlyMaintenanceFee.Amount)
		lastMaintenanceFee = nullTime(acc.LastMaintenanceFeeDate)
	case *models.Savings:
		minimumBalance = decimal.NewNullDecimal(acc.MinBalance.Amount)
		interestRate = decimal.NewNullDecimal(acc.InterestRate)
		lastInterest = nullTime(acc.LastInterestDate)
	case *models.CreditCard:
		creditLimit = decimal.NewNullDecimal(acc.CreditLimit.Amount)
		interestRate = decimal.NewNullDecimal(acc.InterestRate)
		lastInterest = nullTime(acc.LastInterestDate)
	case *models.StudentChecking:
		// No variant columns.
	default:
		return fmt.Errorf("unknown account variant %T", account)
	}

	_, err := r.db.ExecContext(ctx, query,
		rec.ID,
		account.Type(),
		rec.Balance.Amount,
		rec.Balance.Currency,
		rec.SecretKey,
		rec.CreationDate,
		rec.Status,
		rec.PenaltyFee.Amount,
		rec.PrimaryOwner.ID,
		secondaryOwnerID,
		minimumBalance,
		maintenanceFee,
		lastMaintenanceFee,
		interestRate,
		creditLimit,
		lastInterest,
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *accountStore) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// accountRow is the raw shape of an accounts row before it is assembled
// into a variant.
type accountRow struct {
	id                 uuid.UUID
	accountType        models.AccountType
	balanceAmount      decimal.Decimal
	balanceCurrency    string
	secretKey          string
	creationDate       time.Time
	status             models.AccountStatus
	penaltyFeeAmount   decimal.Decimal
	primaryOwnerID     uuid.UUID
	secondaryOwnerID   uuid.NullUUID
	minimumBalance     decimal.NullDecimal
	maintenanceFee     decimal.NullDecimal
	lastMaintenanceFee sql.NullTime
	interestRate       decimal.NullDecimal
	creditLimit        decimal.NullDecimal
	lastInterest       sql.NullTime
}

func (r *accountStore) query(ctx context.Context, query string, args ...any) ([]models.Account, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	var raw []accountRow
	for rows.Next() {
		var row accountRow
		if err := rows.Scan(
			&row.id,
			&row.accountType,
			&row.balanceAmount,
			&row.balanceCurrency,
			&row.secretKey,
			&row.creationDate,
			&row.status,
			&row.penaltyFeeAmount,
			&row.primaryOwnerID,
			&row.secondaryOwnerID,
			&row.minimumBalance,
			&row.maintenanceFee,
			&row.lastMaintenanceFee,
			&row.interestRate,
			&row.creditLimit,
			&row.lastInterest,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		raw = append(raw, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}

	return r.assemble(ctx, raw)
}

// assemble resolves owner references and builds the concrete variants.
// Owners are fetched once per distinct id across the batch.
func (r *accountStore) assemble(ctx context.Context, raw []accountRow) ([]models.Account, error) {
	holders := make(map[uuid.UUID]*models.AccountHolder)
	holderRepo := NewHolderRepository(r.db)

	lookup := func(id uuid.UUID) (*models.AccountHolder, error) {
		if holder, ok := holders[id]; ok {
			return holder, nil
		}
		holder, err := holderRepo.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		holders[id] = holder
		return holder, nil
	}

	accounts := make([]models.Account, 0, len(raw))
	for _, row := range raw {
		primary, err := lookup(row.primaryOwnerID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve primary owner of account %s: %w", row.id, err)
		}

		var secondary *models.AccountHolder
		if row.secondaryOwnerID.Valid {
			secondary, err = lookup(row.secondaryOwnerID.UUID)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve secondary owner of account %s: %w", row.id, err)
			}
		}

		account, err := row.toAccount(primary, secondary)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, nil
}

func (row accountRow) toAccount(primary, secondary *models.AccountHolder) (models.Account, error) {
	record := models.AccountRecord{
		ID:             row.id,
		Balance:        models.Money{Amount: row.balanceAmount, Currency: row.balanceCurrency},
		SecretKey:      row.secretKey,
		CreationDate:   row.creationDate,
		Status:         row.status,
		PenaltyFee:     models.Money{Amount: row.penaltyFeeAmount, Currency: row.balanceCurrency},
		PrimaryOwner:   primary,
		SecondaryOwner: secondary,
	}

	switch row.accountType {
	case models.AccountTypeChecking:
		return &models.Checking{
			AccountRecord:          record,
			MinBalance:             models.Money{Amount: row.minimumBalance.Decimal, Currency: row.balanceCurrency},
			MonthlyMaintenanceFee:  models.Money{Amount: row.maintenanceFee.Decimal, Currency: row.balanceCurrency},
			LastMaintenanceFeeDate: timePtr(row.lastMaintenanceFee),
		}, nil
	case models.AccountTypeSavings:
		return &models.Savings{
			AccountRecord:    record,
			MinBalance:       models.Money{Amount: row.minimumBalance.Decimal, Currency: row.balanceCurrency},
			InterestRate:     row.interestRate.Decimal,
			LastInterestDate: timePtr(row.lastInterest),
		}, nil
	case models.AccountTypeCreditCard:
		return &models.CreditCard{
			AccountRecord:    record,
			CreditLimit:      models.Money{Amount: row.creditLimit.Decimal, Currency: row.balanceCurrency},
			InterestRate:     row.interestRate.Decimal,
			LastInterestDate: timePtr(row.lastInterest),
		}, nil
	case models.AccountTypeStudentChecking:
		return &models.StudentChecking{AccountRecord: record}, nil
	default:
		return nil, fmt.Errorf("unknown account type %q for account %s", row.accountType, row.id)
	}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
