package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/LovationAdmin/travel-api/models"
	"github.com/LovationAdmin/travel-api/repository"
)

type ContactService struct {
	contacts repository.ContactRepository
	notifier Notifier
}

func NewContactService(contacts repository.ContactRepository, notifier Notifier) *ContactService {
	return &ContactService{contacts: contacts, notifier: orNop(notifier)}
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Search(ctx context.Context, term string) ([]models.Contact, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("Search term is required")
	}
	contacts, err := s.contacts.Search(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Get(ctx context.Context, id uint) (*models.Contact, error) {
	c, err := s.contacts.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound("Contact")
	}
	if err != nil {
		return nil, fmt.Errorf("get contact %d: %w", id, err)
	}
	return c, nil
}

func (s *ContactService) Create(ctx context.Context, req models.CreateContactRequest) (*models.Contact, error) {
	c := &models.Contact{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Organization: req.Organization,
		Role:         req.Role,
		Notes:        req.Notes,
	}
	if err := s.contacts.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.notifier.Notify("contact", ActionCreated, c.ID)
	return c, nil
}

func (s *ContactService) Update(ctx context.Context, id uint, req models.UpdateContactRequest) (*models.Contact, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		c.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		c.LastName = *req.LastName
	}
	if req.Email != nil {
		c.Email = *req.Email
	}
	if req.Phone != nil {
		c.Phone = *req.Phone
	}
	if req.Organization != nil {
		c.Organization = *req.Organization
	}
	if req.Role != nil {
		c.Role = *req.Role
	}
	if req.Notes != nil {
		c.Notes = *req.Notes
	}

	if err := s.contacts.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update contact %d: %w", id, err)
	}

	s.notifier.Notify("contact", ActionUpdated, id)
	return c, nil
}

func (s *ContactService) Delete(ctx context.Context, id uint) error {
	err := s.contacts.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return notFound("Contact")
	}
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}

	s.notifier.Notify("contact", ActionDeleted, id)
	return nil
}
