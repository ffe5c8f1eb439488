package models

import "time"

// EmploymentFlag is the tri-state answer to "are you presently employed?".
type EmploymentFlag string

const (
	EmployedYes   EmploymentFlag = "Yes"
	EmployedNo    EmploymentFlag = "No"
	EmployedNever EmploymentFlag = "Never Employed"
)

func (f EmploymentFlag) Valid() bool {
	switch f {
	case EmployedYes, EmployedNo, EmployedNever:
		return true
	}
	return false
}

// EmploymentData holds the employment section of the survey. The
// occupation/industry/level/salary fields are meaningful only when
// IsEmployed is "Yes"; the reconciler enforces that on submission.
type EmploymentData struct {
	UserID                     string         `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	IsEmployed                 EmploymentFlag `gorm:"column:is_employed;type:text" json:"is_employed"`
	EmploymentStatus           string         `gorm:"column:employment_status;type:text" json:"employment_status"`
	PresentOccupation          string         `gorm:"column:present_occupation;type:text" json:"present_occupation"`
	BusinessLine               string         `gorm:"column:business_line;type:text" json:"business_line"`
	PlaceOfWork                string         `gorm:"column:place_of_work;type:text" json:"place_of_work"` // Local|Abroad
	IsFirstJob                 string         `gorm:"column:is_first_job;type:text" json:"is_first_job"`
	JobLevelFirst              string         `gorm:"column:job_level_first;type:text" json:"job_level_first"`
	JobLevelCurrent            string         `gorm:"column:job_level_current;type:text" json:"job_level_current"`
	InitialGrossMonthlyEarning string         `gorm:"column:initial_gross_monthly_earning;type:text" json:"initial_gross_monthly_earning"`
	CurriculumRelevant         string         `gorm:"column:curriculum_relevant;type:text" json:"curriculum_relevant"` // Yes|No

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (EmploymentData) TableName() string { return "employment_data" }
