package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/felixbank/bank-back/internal/clock"
	"github.com/felixbank/bank-back/internal/models"
	"github.com/felixbank/bank-back/internal/repository"
	"github.com/google/uuid"
)

// HolderService manages account holders.
type HolderService struct {
	holders repository.HolderRepository
	clock   clock.Clock
	logger  *slog.Logger
}

// NewHolderService creates a new HolderService.
func NewHolderService(holders repository.HolderRepository, clk clock.Clock, logger *slog.Logger) *HolderService {
	return &HolderService{
		holders: holders,
		clock:   clk,
		logger:  logger,
	}
}

// CreateHolderRequest carries the inputs for registering a holder.
type CreateHolderRequest struct {
	Name           string
	DateOfBirth    time.Time
	PersonalData   models.PersonalData
	PrimaryAddress models.Address
	MailingAddress *models.Address
}

// CreateHolder registers a new account holder.
func (s *HolderService) CreateHolder(ctx context.Context, req CreateHolderRequest) (*models.AccountHolder, error) {
	holder, err := models.NewAccountHolder(req.Name, req.DateOfBirth, req.PersonalData, req.PrimaryAddress, req.MailingAddress, s.clock.Today())
	if err != nil {
		return nil, err
	}

	if err := s.holders.Create(ctx, holder); err != nil {
		return nil, err
	}

	s.logger.Info("account holder created", "holder_id", holder.ID, "name", holder.Name)
	return holder, nil
}

// GetHolder returns the holder with the given id.
func (s *HolderService) GetHolder(ctx context.Context, id uuid.UUID) (*models.AccountHolder, error) {
	return s.holders.FindByID(ctx, id)
}

// ListHolders returns every registered holder.
func (s *HolderService) ListHolders(ctx context.Context) ([]*models.AccountHolder, error) {
	return s.holders.FindAll(ctx)
}

// DeleteHolder removes the holder. Deleting an unknown id fails with a
// not found error.
func (s *HolderService) DeleteHolder(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.holders.DeleteByID(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewError(models.ErrCodeNotFound, "account holder %s not found", id)
	}

	s.logger.Info("account holder deleted", "holder_id", id)
	return nil
}
