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

type SurveyRepository interface {
	// Replace* implement the full-replacement contract for the multi-value
	// answer sets: delete every row for the user, insert the submitted set.
	// An empty set leaves zero rows.
	ReplaceCourseReasons(ctx context.Context, userID string, reasons []string) error
	ReplaceUnemploymentReasons(ctx context.Context, userID string, reasons []string) error
	ReplaceCompetencies(ctx context.Context, userID string, competencies []string) error

	ListCourseReasons(ctx context.Context, userID string) ([]string, error)
	ListUnemploymentReasons(ctx context.Context, userID string) ([]string, error)
	ListCompetencies(ctx context.Context, userID string) ([]string, error)

	UpsertSuggestion(ctx context.Context, userID, suggestion string) error
	GetSuggestion(ctx context.Context, userID string) (string, error)

	GetResponse(ctx context.Context, userID string) (*models.SurveyResponse, error)
	MarkCompleted(ctx context.Context, userID string, at time.Time) error

	DeleteAllByUserID(ctx context.Context, userID string) error
}

type surveyRepo struct {
	db *gorm.DB
}

func NewSurveyRepo(db *gorm.DB) SurveyRepository {
	return &surveyRepo{db: db}
}

func (r *surveyRepo) ReplaceCourseReasons(ctx context.Context, userID string, reasons []string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("user_id = ?", userID).Delete(&models.CourseReason{}).Error; err != nil {
		return err
	}
	if len(reasons) == 0 {
		return nil
	}
	rows := make([]models.CourseReason, 0, len(reasons))
	for _, reason := range reasons {
		rows = append(rows, models.CourseReason{
			UserID:     userID,
			ReasonType: reason,
			Level:      models.CourseReasonLevel,
		})
	}
	return tx.Create(&rows).Error
}

func (r *surveyRepo) ReplaceUnemploymentReasons(ctx context.Context, userID string, reasons []string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("user_id = ?", userID).Delete(&models.UnemploymentReason{}).Error; err != nil {
		return err
	}
	if len(reasons) == 0 {
		return nil
	}
	rows := make([]models.UnemploymentReason, 0, len(reasons))
	for _, reason := range reasons {
		rows = append(rows, models.UnemploymentReason{UserID: userID, Reason: reason})
	}
	return tx.Create(&rows).Error
}

func (r *surveyRepo) ReplaceCompetencies(ctx context.Context, userID string, competencies []string) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("user_id = ?", userID).Delete(&models.UsefulCompetency{}).Error; err != nil {
		return err
	}
	if len(competencies) == 0 {
		return nil
	}
	rows := make([]models.UsefulCompetency, 0, len(competencies))
	for _, c := range competencies {
		rows = append(rows, models.UsefulCompetency{UserID: userID, Competency: c})
	}
	return tx.Create(&rows).Error
}

func (r *surveyRepo) ListCourseReasons(ctx context.Context, userID string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.CourseReason{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("reason_type", &out).Error
	return out, err
}

func (r *surveyRepo) ListUnemploymentReasons(ctx context.Context, userID string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.UnemploymentReason{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("reason", &out).Error
	return out, err
}

func (r *surveyRepo) ListCompetencies(ctx context.Context, userID string) ([]string, error) {
	var out []string
	err := r.db.WithContext(ctx).
		Model(&models.UsefulCompetency{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("competency", &out).Error
	return out, err
}

func (r *surveyRepo) UpsertSuggestion(ctx context.Context, userID, suggestion string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"suggestion", "updated_at"}),
		}).
		Create(&models.CurriculumSuggestion{
			UserID:     userID,
			Suggestion: suggestion,
			UpdatedAt:  time.Now().UTC(),
		}).Error
}

func (r *surveyRepo) GetSuggestion(ctx context.Context, userID string) (string, error) {
	var row models.CurriculumSuggestion
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return row.Suggestion, err
}

func (r *surveyRepo) GetResponse(ctx context.Context, userID string) (*models.SurveyResponse, error) {
	var row models.SurveyResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &row, err
}

// MarkCompleted only ever writes true; nothing in the codebase flips a
// completed response back to pending.
func (r *surveyRepo) MarkCompleted(ctx context.Context, userID string, at time.Time) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"is_completed", "completed_at"}),
		}).
		Create(&models.SurveyResponse{
			UserID:      userID,
			IsCompleted: true,
			CompletedAt: &at,
		}).Error
}

func (r *surveyRepo) DeleteAllByUserID(ctx context.Context, userID string) error {
	tx := r.db.WithContext(ctx)
	for _, m := range []any{
		&models.CourseReason{},
		&models.UnemploymentReason{},
		&models.UsefulCompetency{},
		&models.CurriculumSuggestion{},
		&models.SurveyResponse{},
	} {
		if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return err
		}
	}
	return nil
}
