package models

import "time"

// Multi-value survey answers. Each set is fully replaced on every
// submission: delete all rows for the user, insert the submitted set.

type CourseReason struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	ReasonType string `gorm:"column:reason_type;type:text" json:"reason_type"`
	Level      string `gorm:"column:level;type:text" json:"level"`
}

func (CourseReason) TableName() string { return "course_reasons" }

// CourseReasonLevel is the only level the undergraduate questionnaire asks
// about; kept as a column so a graduate-studies variant can reuse the table.
const CourseReasonLevel = "Undergraduate"

type UnemploymentReason struct {
	ID     uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Reason string `gorm:"column:reason;type:text" json:"reason"`
}

func (UnemploymentReason) TableName() string { return "unemployment_reasons" }

type UsefulCompetency struct {
	ID         uint   `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID     string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Competency string `gorm:"column:competency;type:text" json:"competency"`
}

func (UsefulCompetency) TableName() string { return "useful_competencies" }

type CurriculumSuggestion struct {
	UserID     string    `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Suggestion string    `gorm:"column:suggestion;type:text" json:"suggestion"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (CurriculumSuggestion) TableName() string { return "curriculum_suggestions" }

// SurveyResponse tracks completion. IsCompleted is monotonic: it is set to
// true exactly once by a successful submission and never reset.
type SurveyResponse struct {
	UserID      string     `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	IsCompleted bool       `gorm:"column:is_completed" json:"is_completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at"`
}

func (SurveyResponse) TableName() string { return "survey_responses" }
