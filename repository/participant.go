package repository

import (
	"context"

	"github.com/LovationAdmin/travel-api/models"
	"gorm.io/gorm"
)

type participantRow struct {
	models.Participant
	TravelName *string
}

func (row participantRow) toModel() models.Participant {
	p := row.Participant
	p.Travel = travelRef(&p.TravelID, row.TravelName)
	return p
}

type ParticipantRepo struct {
	db *gorm.DB
}

func NewParticipantRepo(db *gorm.DB) *ParticipantRepo {
	return &ParticipantRepo{db: db}
}

func (r *ParticipantRepo) query(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Scopes(withTravel("participants"))
}

func (r *ParticipantRepo) find(q *gorm.DB) ([]models.Participant, error) {
	var rows []participantRow
	if err := q.Order("participants.id").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Participant, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toModel())
	}
	return out, nil
}

func (r *ParticipantRepo) List(ctx context.Context) ([]models.Participant, error) {
	return r.find(r.query(ctx))
}

func (r *ParticipantRepo) ListByTravel(ctx context.Context, travelID uint) ([]models.Participant, error) {
	return r.find(r.query(ctx).Where("participants.travel_id = ?", travelID))
}

func (r *ParticipantRepo) Get(ctx context.Context, id uint) (*models.Participant, error) {
	var row participantRow
	if err := r.query(ctx).Where("participants.id = ?", id).Take(&row).Error; err != nil {
		return nil, translate(err)
	}
	p := row.toModel()
	return &p, nil
}

func (r *ParticipantRepo) Create(ctx context.Context, p *models.Participant) error {
	return translate(r.db.WithContext(ctx).Create(p).Error)
}

func (r *ParticipantRepo) Update(ctx context.Context, p *models.Participant) error {
	return translate(r.db.WithContext(ctx).Save(p).Error)
}

func (r *ParticipantRepo) Delete(ctx context.Context, id uint) error {
	return deleteByID(r.db.WithContext(ctx), &models.Participant{}, id)
}

func (r *ParticipantRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Participant{}).Count(&n).Error
	return n, err
}
