package models

import "time"

type EducationalBackground struct {
	UserID            string `gorm:"column:user_id;type:uuid;primaryKey" json:"user_id"`
	Degree            string `gorm:"column:degree;type:text" json:"degree"`
	Specialization    string `gorm:"column:specialization;type:text" json:"specialization"`
	CollegeUniversity string `gorm:"column:college_university;type:text" json:"college_university"`
	YearGraduated     string `gorm:"column:year_graduated;type:text" json:"year_graduated"`
	HonorsAwards      string `gorm:"column:honors_awards;type:text" json:"honors_awards"`

	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (EducationalBackground) TableName() string { return "educational_background" }
