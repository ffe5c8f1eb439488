package models

import (
	"time"

	"gorm.io/datatypes"
)

// Activity type tags written by the services. Fixed vocabulary; the admin
// dashboard filters on these.
const (
	ActivityRegistration    = "registration"
	ActivityLogin           = "login"
	ActivitySurveyCompleted = "survey_completed"
	ActivitySurveyUpdated   = "survey_updated"
	ActivityProfileUpdated  = "profile_updated"
	ActivityProfileDeleted  = "profile_deleted"
	ActivityPasswordChanged = "password_changed"
)

// ActivityLog is append-only. UserID is the acting user, not necessarily
// the user whose record was touched (admin actions log the admin).
type ActivityLog struct {
	ID           uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID       string         `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	ActivityType string         `gorm:"column:activity_type;type:text;index" json:"activity_type"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	Metadata     datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedAt    time.Time      `gorm:"column:created_at;index" json:"created_at"`
}

func (ActivityLog) TableName() string { return "activity_logs" }
