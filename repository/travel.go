package repository

import (
	"context"

	"github.com/LovationAdmin/travel-api/models"
	"gorm.io/gorm"
)

type TravelRepo struct {
	db *gorm.DB
}

func NewTravelRepo(db *gorm.DB) *TravelRepo {
	return &TravelRepo{db: db}
}

func (r *TravelRepo) List(ctx context.Context) ([]models.Travel, error) {
	var travels []models.Travel
	if err := r.db.WithContext(ctx).Order("id").Find(&travels).Error; err != nil {
		return nil, err
	}
	return travels, nil
}

func (r *TravelRepo) Get(ctx context.Context, id uint) (*models.Travel, error) {
	var t models.Travel
	if err := r.db.WithContext(ctx).Take(&t, id).Error; err != nil {
		return nil, translate(err)
	}
	return &t, nil
}

func (r *TravelRepo) Exists(ctx context.Context, id uint) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Travel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *TravelRepo) Create(ctx context.Context, t *models.Travel) error {
	return translate(r.db.WithContext(ctx).Create(t).Error)
}

func (r *TravelRepo) Update(ctx context.Context, t *models.Travel) error {
	return translate(r.db.WithContext(ctx).Save(t).Error)
}

// Delete relies on the foreign keys: participants cascade, finance entries
// are detached.
func (r *TravelRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Travel{}, id)
}

func (r *TravelRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Travel{}).Count(&n).Error
	return n, err
}
