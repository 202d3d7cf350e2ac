package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/felixbank/bank-back/internal/models"
	"github.com/google/uuid"
)

// HolderRepository defines data access for account holders.
type HolderRepository interface {
	Create(ctx context.Context, holder *models.AccountHolder) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error)
	FindAll(ctx context.Context) ([]*models.AccountHolder, error)
	DeleteByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type holderRepository struct {
	db Querier
}

// NewHolderRepository creates a HolderRepository backed by the given
// database handle or transaction.
func NewHolderRepository(db Querier) HolderRepository {
	return &holderRepository{db: db}
}

const holderColumns = `
	id, name, date_of_birth, first_name, last_name, phone_number, email,
	primary_street, primary_city, primary_postal_code, primary_country,
	mailing_street, mailing_city, mailing_postal_code, mailing_country,
	role, status, created_at
`

func (r *holderRepository) Create(ctx context.Context, holder *models.AccountHolder) error {
	query := `
		INSERT INTO account_holders (` + holderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	var mailingStreet, mailingCity, mailingPostalCode, mailingCountry sql.NullString
	if m := holder.MailingAddress; m != nil {
		mailingStreet = sql.NullString{String: m.Street, Valid: true}
		mailingCity = sql.NullString{String: m.City, Valid: true}
		mailingPostalCode = sql.NullString{String: m.PostalCode, Valid: true}
		mailingCountry = sql.NullString{String: m.Country, Valid: true}
	}

	_, err := r.db.ExecContext(ctx, query,
		holder.ID,
		holder.Name,
		holder.DateOfBirth,
		holder.PersonalData.FirstName,
		holder.PersonalData.LastName,
		holder.PersonalData.PhoneNumber,
		holder.PersonalData.Email,
		holder.PrimaryAddress.Street,
		holder.PrimaryAddress.City,
		holder.PrimaryAddress.PostalCode,
		holder.PrimaryAddress.Country,
		mailingStreet,
		mailingCity,
		mailingPostalCode,
		mailingCountry,
		holder.Role,
		holder.Status,
		holder.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account holder: %w", err)
	}
	return nil
}

func (r *holderRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error) {
	query := `SELECT ` + holderColumns + ` FROM account_holders WHERE id = $1`

	holder, err := scanHolder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.NewError(models.ErrCodeNotFound, "account holder %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find account holder by id: %w", err)
	}
	return holder, nil
}

func (r *holderRepository) FindAll(ctx context.Context) ([]*models.AccountHolder, error) {
	query := `SELECT ` + holderColumns + ` FROM account_holders ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list account holders: %w", err)
	}
	defer rows.Close()

	var holders []*models.AccountHolder
	for rows.Next() {
		holder, err := scanHolder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account holder: %w", err)
		}
		holders = append(holders, holder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account holders: %w", err)
	}
	return holders, nil
}

func (r *holderRepository) DeleteByID(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM account_holders WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete account holder: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return affected > 0, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanHolder(row rowScanner) (*models.AccountHolder, error) {
	var holder models.AccountHolder
	var mailingStreet, mailingCity, mailingPostalCode, mailingCountry sql.NullString

	err := row.Scan(
		&holder.ID,
		&holder.Name,
		&holder.DateOfBirth,
		&holder.PersonalData.FirstName,
		&holder.PersonalData.LastName,
		&holder.PersonalData.PhoneNumber,
		&holder.PersonalData.Email,
		&holder.PrimaryAddress.Street,
		&holder.PrimaryAddress.City,
		&holder.PrimaryAddress.PostalCode,
		&holder.PrimaryAddress.Country,
		&mailingStreet,
		&mailingCity,
		&mailingPostalCode,
		&mailingCountry,
		&holder.Role,
		&holder.Status,
		&holder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if mailingStreet.Valid {
		holder.MailingAddress = &models.Address{
			Street:     mailingStreet.String,
			City:       mailingCity.String,
			PostalCode: mailingPostalCode.String,
			Country:    mailingCountry.String,
		}
	}
	return &holder, nil
}
