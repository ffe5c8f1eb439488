package postgres

import (
	"context"
	"time"

	"github.com/alumify/backend/internal/models"
	"gorm.io/gorm"
)

// ActivityEntry is an activity row joined with the actor's name for the
// admin dashboard feed.
type ActivityEntry struct {
	ID           uint      `json:"id"`
	ActivityType string    `json:"activity_type"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
	UserName     string    `json:"user_name"`
}

type ActivityRepository interface {
	Append(ctx context.Context, entry *models.ActivityLog) error
	Recent(ctx context.Context, limit int) ([]ActivityEntry, error)
	DeleteByUserID(ctx context.Context, userID string) error
}

type activityRepo struct {
	db *gorm.DB
}

func NewActivityRepo(db *gorm.DB) ActivityRepository {
	return &activityRepo{db: db}
}

func (r *activityRepo) Append(ctx context.Context, entry *models.ActivityLog) error {
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *activityRepo) Recent(ctx context.Context, limit int) ([]ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []ActivityEntry
	err := r.db.WithContext(ctx).
		Model(&models.ActivityLog{}).
		Select("activity_logs.id, activity_logs.activity_type, activity_logs.description, activity_logs.created_at, COALESCE(users.name, '') AS user_name").
		Joins("LEFT JOIN users ON users.id = activity_logs.user_id").
		Order("activity_logs.created_at DESC").
		Limit(limit).
		Scan(&out).Error
	return out, err
}

func (r *activityRepo) DeleteByUserID(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.ActivityLog{}).Error
}
