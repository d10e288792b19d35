package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
)

type ParticipantService struct {
	participants repository.ParticipantRepository
	travels      repository.TravelRepository
	notifier     Notifier
}

func NewParticipantService(
	participants repository.ParticipantRepository,
	travels repository.TravelRepository,
	notifier Notifier,
) *ParticipantService {
	return &ParticipantService{
		participants: participants,
		travels:      travels,
		notifier:     orNop(notifier),
	}
}

func (s *ParticipantService) List(ctx context.Context) ([]models.Participant, error) {
	participants, err := s.participants.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	return participants, nil
}

func (s *ParticipantService) ListByTravel(ctx context.Context, travelID uint) ([]models.Participant, error) {
	if err := requireTravel(ctx, s.travels, travelID); err != nil {
		return nil, err
	}
	participants, err := s.participants.ListByTravel(ctx, travelID)
	if err != nil {
		return nil, fmt.Errorf("list participants of travel %d: %w", travelID, err)
	}
	return participants, nil
}

func (s *ParticipantService) Get(ctx context.Context, id uint) (*models.Participant, error) {
	p, err := s.participants.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Participant")
	}
	if err != nil {
		return nil, fmt.Errorf("get participant %d: %w", id, err)
	}
	return p, nil
}

// Create persists nothing unless TravelID names an existing travel.
func (s *ParticipantService) Create(ctx context.Context, req models.CreateParticipantRequest) (*models.Participant, error) {
	if err := requireTravel(ctx, s.travels, req.TravelID); err != nil {
		return nil, err
	}

	p := &models.Participant{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		TravelID:  req.TravelID,
		Status:    req.Status,
		Notes:     req.Notes,
	}
	if req.AmountPaid != nil {
		p.AmountPaid = *req.AmountPaid
	}
	if p.Status == "" {
		p.Status = models.ParticipantStatusRegistered
	}

	if err := s.participants.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create participant: %w", err)
	}

	s.notifier.Notify("participant", ActionCreated, p.ID)
	return s.Get(ctx, p.ID)
}

// Update applies the supplied fields. A changed TravelID is checked before
// anything is written.
func (s *ParticipantService) Update(ctx context.Context, id uint, req models.UpdateParticipantRequest) (*models.Participant, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TravelID != nil && *req.TravelID != p.TravelID {
		if err := requireTravel(ctx, s.travels, *req.TravelID); err != nil {
			return nil, err
		}
		p.TravelID = *req.TravelID
	}
	if req.FirstName != nil {
		p.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		p.LastName = *req.LastName
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.AmountPaid != nil {
		p.AmountPaid = *req.AmountPaid
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}

	p.Travel = nil
	if err := s.participants.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update participant %d: %w", id, err)
	}

	s.notifier.Notify("participant", ActionUpdated, id)
	return s.Get(ctx, id)
}

func (s *ParticipantService) Delete(ctx context.Context, id uint) error {
	err := s.participants.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Participant")
	}
	if err != nil {
		return fmt.Errorf("delete participant %d: %w", id, err)
	}

	s.notifier.Notify("participant", ActionDeleted, id)
	return nil
}

// requireTravel turns a dangling travel reference into a Travel not found
// error.
func requireTravel(ctx context.Context, travels repository.TravelRepository, id uint) error {
	ok, err := travels.Exists(ctx, id)
	if err != nil {
		return fmt.Errorf("check travel %d: %w", id, err)
	}
	if !ok {
		return notFound("Travel")
	}
	return nil
}
