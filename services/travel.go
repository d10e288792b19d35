package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
	"github.com/LovationAdmin/travel-api/utils"
)

type TravelService struct {
	travels      repository.TravelRepository
	participants repository.ParticipantRepository
	finances     repository.FinanceRepository
	notifier     Notifier
}

func NewTravelService(
	travels repository.TravelRepository,
	participants repository.ParticipantRepository,
	finances repository.FinanceRepository,
	notifier Notifier,
) *TravelService {
	return &TravelService{
		travels:      travels,
		participants: participants,
		finances:     finances,
		notifier:     orNop(notifier),
	}
}

func (s *TravelService) List(ctx context.Context) ([]models.Travel, error) {
	travels, err := s.travels.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list travels: %w", err)
	}
	return travels, nil
}

func (s *TravelService) Get(ctx context.Context, id uint) (*models.Travel, error) {
	t, err := s.travels.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Travel")
	}
	if err != nil {
		return nil, fmt.Errorf("get travel %d: %w", id, err)
	}
	return t, nil
}

func (s *TravelService) Create(ctx context.Context, req models.CreateTravelRequest) (*models.Travel, error) {
	start, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, invalid("Invalid startDate")
	}
	end, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, invalid("Invalid endDate")
	}

	t := &models.Travel{
		Name:         req.Name,
		Description:  req.Description,
		StartDate:    start,
		EndDate:      end,
		Location:     req.Location,
		TravelAgency: req.TravelAgency,
		Commission:   *req.Commission,
		TotalFee:     *req.TotalFee,
		Status:       req.Status,
	}
	if t.Status == "" {
		t.Status = models.TravelStatusPlanned
	}
	warnDateOrder(t)

	if err := s.travels.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create travel: %w", err)
	}

	s.notifier.Notify("travel", ActionCreated, t.ID)
	return t, nil
}

func (s *TravelService) Update(ctx context.Context, id uint, req models.UpdateTravelRequest) (*models.Travel, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.StartDate != nil {
		start, err := utils.ParseDate(*req.StartDate)
		if err != nil {
			return nil, invalid("Invalid startDate")
		}
		t.StartDate = start
	}
	if req.EndDate != nil {
		end, err := utils.ParseDate(*req.EndDate)
		if err != nil {
			return nil, invalid("Invalid endDate")
		}
		t.EndDate = end
	}
	if req.Location != nil {
		t.Location = *req.Location
	}
	if req.TravelAgency != nil {
		t.TravelAgency = *req.TravelAgency
	}
	if req.Commission != nil {
		t.Commission = *req.Commission
	}
	if req.TotalFee != nil {
		t.TotalFee = *req.TotalFee
	}
	if req.Status != nil {
		t.Status = *req.Status
	}
	warnDateOrder(t)

	if err := s.travels.Update(ctx, t); err != nil {
		return nil, fmt.Errorf("update travel %d: %w", id, err)
	}

	s.notifier.Notify("travel", ActionUpdated, t.ID)
	return t, nil
}

// Delete removes the travel with its participants; its finance entries stay
// as general entries.
func (s *TravelService) Delete(ctx context.Context, id uint) error {
	err := s.travels.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Travel")
	}
	if err != nil {
		return fmt.Errorf("delete travel %d: %w", id, err)
	}

	s.notifier.Notify("travel", ActionDeleted, id)
	return nil
}

// Summary rolls up the participants and ledger of one travel.
func (s *TravelService) Summary(ctx context.Context, id uint) (*models.TravelSummary, error) {
	t, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	participants, err := s.participants.ListByTravel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list participants of travel %d: %w", id, err)
	}
	finances, err := s.finances.ListByTravel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list finances of travel %d: %w", id, err)
	}

	summary := SummarizeTravel(*t, participants, finances)
	return &summary, nil
}

// Summaries returns one rollup per travel, in travel id order.
func (s *TravelService) Summaries(ctx context.Context) ([]models.TravelSummary, error) {
	travels, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	participants, err := s.participants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	finances, err := s.finances.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list finances: %w", err)
	}

	byTravelP := make(map[uint][]models.Participant)
	for _, p := range participants {
		byTravelP[p.TravelID] = append(byTravelP[p.TravelID], p)
	}
	byTravelF := make(map[uint][]models.Finance)
	for _, f := range finances {
		if f.TravelID != nil {
			byTravelF[*f.TravelID] = append(byTravelF[*f.TravelID], f)
		}
	}

	out := make([]models.TravelSummary, 0, len(travels))
	for _, t := range travels {
		out = append(out, SummarizeTravel(t, byTravelP[t.ID], byTravelF[t.ID]))
	}
	return out, nil
}

// SummarizeTravel is the pure rollup behind Summary and Summaries.
func SummarizeTravel(t models.Travel, participants []models.Participant, finances []models.Finance) models.TravelSummary {
	ledger := Summarize(finances)
	summary := models.TravelSummary{
		Travel:       *t.Ref(),
		Participants: len(participants),
		Income:       ledger.Income,
		Expenses:     ledger.Expenses,
		Balance:      ledger.Balance,
		Count:        ledger.Count,
	}
	for _, p := range participants {
		if p.Status == models.ParticipantStatusConfirmed {
			summary.ConfirmedParticipants++
		}
		summary.AmountPaid += p.AmountPaid
	}
	return summary
}

func warnDateOrder(t *models.Travel) {
	if t.EndDate.Before(t.StartDate) {
		utils.SafeWarn("travel %q ends (%s) before it starts (%s)",
			t.Name, t.EndDate.Format("2006-01-02"), t.StartDate.Format("2006-01-02"))
	}
}
