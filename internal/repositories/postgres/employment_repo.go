package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmploymentRepository interface {
	GetByUserID(ctx context.Context, userID string) (*models.EmploymentData, error)
	Upsert(ctx context.Context, e *models.EmploymentData) error
	// UpdateStatus mutates only the status-related columns, leaving job
	// levels, salary and curriculum relevance untouched.
	UpdateStatus(ctx context.Context, userID string, flag models.EmploymentFlag, status, occupation, businessLine, placeOfWork string) error
	DeleteByUserID(ctx context.Context, userID string) error
}

type employmentRepo struct {
	db *gorm.DB
}

func NewEmploymentRepo(db *gorm.DB) EmploymentRepository {
	return &employmentRepo{db: db}
}

func (r *employmentRepo) GetByUserID(ctx context.Context, userID string) (*models.EmploymentData, error) {
	var e models.EmploymentData
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &e, err
}

func (r *employmentRepo) Upsert(ctx context.Context, e *models.EmploymentData) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_employed", "employment_status", "present_occupation", "business_line",
				"place_of_work", "is_first_job", "job_level_first", "job_level_current",
				"initial_gross_monthly_earning", "curriculum_relevant", "updated_at",
			}),
		}).
		Create(e).Error
}

func (r *employmentRepo) UpdateStatus(ctx context.Context, userID string, flag models.EmploymentFlag, status, occupation, businessLine, placeOfWork string) error {
	row := &models.EmploymentData{
		UserID:            userID,
		IsEmployed:        flag,
		EmploymentStatus:  status,
		PresentOccupation: occupation,
		BusinessLine:      businessLine,
		PlaceOfWork:       placeOfWork,
		UpdatedAt:         time.Now().UTC(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"is_employed", "employment_status", "present_occupation", "business_line",
				"place_of_work", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *employmentRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.EmploymentData{}).Error
}
