// Package repository persists the travel agency entities. The gorm-backed
// stores share the *sql.DB pool opened in config.InitDB; repotest carries
// in-memory versions of the same interfaces.
package repository

import (
	"context"
	"errors"

	"github.com/LovationAdmin/travel-api/models"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a unique column already holds the value.
var ErrDuplicate = errors.New("duplicate record")

type TravelRepository interface {
	List(ctx context.Context) ([]models.Travel, error)
	Get(ctx context.Context, id uint) (*models.Travel, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Create(ctx context.Context, t *models.Travel) error
	Update(ctx context.Context, t *models.Travel) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ParticipantRepository interface {
	List(ctx context.Context) ([]models.Participant, error)
	ListByTravel(ctx context.Context, travelID uint) ([]models.Participant, error)
	Get(ctx context.Context, id uint) (*models.Participant, error)
	Create(ctx context.Context, p *models.Participant) error
	Update(ctx context.Context, p *models.Participant) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type FinanceRepository interface {
	List(ctx context.Context) ([]models.Finance, error)
	ListByTravel(ctx context.Context, travelID uint) ([]models.Finance, error)
	Get(ctx context.Context, id uint) (*models.Finance, error)
	Create(ctx context.Context, f *models.Finance) error
	Update(ctx context.Context, f *models.Finance) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type ContactRepository interface {
	List(ctx context.Context) ([]models.Contact, error)
	Search(ctx context.Context, term string) ([]models.Contact, error)
	Get(ctx context.Context, id uint) (*models.Contact, error)
	Create(ctx context.Context, c *models.Contact) error
	Update(ctx context.Context, c *models.Contact) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Create(ctx context.Context, u *models.User) error
	Update(ctx context.Context, u *models.User) error
	Count(ctx context.Context) (int64, error)
}
