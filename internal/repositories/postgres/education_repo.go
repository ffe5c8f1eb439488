package postgres

import (
	"context"
	"errors"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EducationRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.EducationalBackground, error)
	Upsert(ctx context.Context, e *models.EducationalBackground) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type educationRepo struct {
	db *gorm.DB
}

func NewEducationRepo(db *gorm.DB) EducationRepository {
	return &educationRepo{db: db}
}

func (r *educationRepo) GetByUserID(ctx context.Context, userID string) (*models.EducationalBackground, error) {
	var e models.EducationalBackground
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *educationRepo) Upsert(ctx context.Context, e *models.EducationalBackground) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"degree", "specialization", "college_university", "year_graduated",
				"honors_awards", "updated_at",
			}),
		}).
		Create(e).Error
}

func (r *educationRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.EducationalBackground{}).Error
}
