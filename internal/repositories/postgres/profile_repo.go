package postgres

import (
	"context"
	"errors"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.GraduateProfile, error)
	Upsert(ctx context.Context, p *models.GraduateProfile) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type profileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) ProfileRepository {
	return &profileRepo{db: db}
}

func (r *profileRepo) GetByUserID(ctx context.Context, userID string) (*models.GraduateProfile, error) {
	var p models.GraduateProfile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *profileRepo) Upsert(ctx context.Context, p *models.GraduateProfile) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"permanent_address", "telephone", "mobile_number", "civil_status",
				"sex", "birthday", "region_of_origin", "province", "location_type",
				"updated_at",
			}),
		}).
		Create(p).Error
}

func (r *profileRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.GraduateProfile{}).Error
}
