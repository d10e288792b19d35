package repository

import (
	"context"

	"github.com/LovationAdmin/travel-api/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db: db}
}

func (r *ContactRepo) List(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	if err := r.db.WithContext(ctx).Order("id").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// Search matches term case-insensitively against names, email and
// organization.
func (r *ContactRepo) Search(ctx context.Context, term string) ([]models.Contact, error) {
	pattern := likePattern(term)
	var contacts []models.Contact
	err := r.db.WithContext(ctx).
		Where("first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR organization ILIKE ?",
			pattern, pattern, pattern, pattern).
		Order("id").
		Find(&contacts).Error
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

func (r *ContactRepo) Get(ctx context.Context, id uint) (*models.Contact, error) {
	var c models.Contact
	if err := r.db.WithContext(ctx).Take(&c, id).Error; err != nil {
		return nil, translate(err)
	}
	return &c, nil
}

func (r *ContactRepo) Create(ctx context.Context, c *models.Contact) error {
	return translate(r.db.WithContext(ctx).Create(c).Error)
}

func (r *ContactRepo) Update(ctx context.Context, c *models.Contact) error {
	return translate(r.db.WithContext(ctx).Save(c).Error)
}

func (r *ContactRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Contact{}, id)
}

func (r *ContactRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Contact{}).Count(&n).Error
	return n, err
}
