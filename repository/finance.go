package repository

import (
	"context"

	"github.com/LovationAdmin/travel-api/models"
	"gorm.io/gorm"
)

type financeRow struct {
	models.Finance
	TravelName *string
}

func (row financeRow) toModel() models.Finance {
	f := row.Finance
	f.Travel = travelRef(f.TravelID, row.TravelName)
	return f
}

type FinanceRepo struct {
	db *gorm.DB
}

func NewFinanceRepo(db *gorm.DB) *FinanceRepo {
	return &FinanceRepo{db: db}
}

func (r *FinanceRepo) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(withTravel("finances"))
}

func (r *FinanceRepo) find(q *gorm.DB) ([]models.Finance, error) {
	var rows []financeRow
	if err := q.Order("finances.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Finance, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *FinanceRepo) List(ctx context.Context) ([]models.Finance, error) {
	return r.find(r.query(ctx))
}

func (r *FinanceRepo) ListByTravel(ctx context.Context, travelID uint) ([]models.Finance, error) {
	return r.find(r.query(ctx).Where("finances.travel_id = ?", travelID))
}

func (r *FinanceRepo) Get(ctx context.Context, id uint) (*models.Finance, error) {
	var row financeRow
	if err := r.query(ctx).Where("finances.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	f := row.toModel()
	return &f, nil
}

func (r *FinanceRepo) Create(ctx context.Context, f *models.Finance) error {
	return translate(r.db.WithContext(ctx).Create(f).Error)
}

// Update writes every column so a nil TravelID clears the reference.
func (r *FinanceRepo) Update(ctx context.Context, f *models.Finance) error {
	return translate(r.db.WithContext(ctx).Save(f).Error)
}

func (r *FinanceRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Finance{}, id)
}

func (r *FinanceRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Finance{}).Count(&n).Error
	return n, err
}
