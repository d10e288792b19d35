package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
	"github.com/LovationAdmin/travel-api/utils"
)

type FinanceService struct {
	finances repository.FinanceRepository
	travels  repository.TravelRepository
	notifier Notifier
	now      func() time.Time
}

func NewFinanceService(
	finances repository.FinanceRepository,
	travels repository.TravelRepository,
	notifier Notifier,
) *FinanceService {
	return &FinanceService{
		finances: finances,
		travels:  travels,
		notifier: orNop(notifier),
		now:      time.Now,
	}
}

func (s *FinanceService) List(ctx context.Context) ([]models.Finance, error) {
	finances, err := s.finances.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}
	return finances, nil
}

func (s *FinanceService) ListByTravel(ctx context.Context, travelID uint) ([]models.Finance, error) {
	if err := requireTravel(ctx, s.travels, travelID); err != nil {
		return nil, err
	}
	finances, err := s.finances.ListByTravel(ctx, travelID)
	if err != nil {
		return nil, fmt.Errorf("list finances of travel %d: %w", travelID, err)
	}
	return finances, nil
}

func (s *FinanceService) Get(ctx context.Context, id uint) (*models.Finance, error) {
	f, err := s.finances.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Finance record")
	}
	if err != nil {
		return nil, fmt.Errorf("get finance %d: %w", id, err)
	}
	return f, nil
}

// Create records a ledger line. Without a TravelID it is a general entry.
func (s *FinanceService) Create(ctx context.Context, req models.CreateFinanceRequest) (*models.Finance, error) {
	var travelID *uint
	if req.TravelID != nil && *req.TravelID != 0 {
		if err := requireTravel(ctx, s.travels, *req.TravelID); err != nil {
			return nil, err
		}
		id := *req.TravelID
		travelID = &id
	}

	date := s.now()
	if req.Date != "" {
		d, err := utils.ParseDate(req.Date)
		if err != nil {
			return nil, invalid("Invalid date")
		}
		date = d
	}

	f := &models.Finance{
		Type:        req.Type,
		Category:    req.Category,
		Amount:      *req.Amount,
		Date:        date,
		Description: req.Description,
		TravelID:    travelID,
	}

	if err := s.finances.Create(ctx, f); err != nil {
		return nil, fmt.Errorf("create finance: %w", err)
	}

	utils.LogLedgerAction("created", f.ID, f.Type, f.Amount)
	s.notifier.Notify("finance", ActionCreated, f.ID)
	return s.Get(ctx, f.ID)
}

// Update applies the supplied fields. TravelID 0 detaches the entry, any
// other changed value must name an existing travel.
func (s *FinanceService) Update(ctx context.Context, id uint, req models.UpdateFinanceRequest) (*models.Finance, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TravelID != nil {
		switch {
		case *req.TravelID == 0:
			f.TravelID = nil
		case f.TravelID == nil || *f.TravelID != *req.TravelID:
			if err := requireTravel(ctx, s.travels, *req.TravelID); err != nil {
				return nil, err
			}
			travelID := *req.TravelID
			f.TravelID = &travelID
		}
	}
	if req.Date != nil {
		d, err := utils.ParseDate(*req.Date)
		if err != nil {
			return nil, invalid("Invalid date")
		}
		f.Date = d
	}
	if req.Type != nil {
		f.Type = *req.Type
	}
	if req.Category != nil {
		f.Category = *req.Category
	}
	if req.Amount != nil {
		f.Amount = *req.Amount
	}
	if req.Description != nil {
		f.Description = *req.Description
	}

	f.Travel = nil
	if err := s.finances.Update(ctx, f); err != nil {
		return nil, fmt.Errorf("update finance %d: %w", id, err)
	}

	utils.LogLedgerAction("updated", f.ID, f.Type, f.Amount)
	s.notifier.Notify("finance", ActionUpdated, id)
	return s.Get(ctx, id)
}

func (s *FinanceService) Delete(ctx context.Context, id uint) error {
	err := s.finances.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Finance record")
	}
	if err != nil {
		return fmt.Errorf("delete finance %d: %w", id, err)
	}

	s.notifier.Notify("finance", ActionDeleted, id)
	return nil
}

// Summary totals the whole ledger.
func (s *FinanceService) Summary(ctx context.Context) (models.FinancialSummary, error) {
	finances, err := s.List(ctx)
	if err != nil {
		return models.FinancialSummary{}, err
	}
	return Summarize(finances), nil
}

// Summarize sums amounts by type. Balance is always Income - Expenses.
func Summarize(finances []models.Finance) models.FinancialSummary {
	var summary models.FinancialSummary
	for _, f := range finances {
		switch f.Type {
		case models.FinanceTypeIncome:
			summary.Income += f.Amount
		case models.FinanceTypeExpense:
			summary.Expenses += f.Amount
		}
	}
	summary.Balance = summary.Income - summary.Expenses
	summary.Count = len(finances)
	return summary
}
