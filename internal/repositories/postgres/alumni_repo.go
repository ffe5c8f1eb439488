package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
	"gorm.io/gorm"
)

// AlumniRow is the denormalized roster row the admin screens and the CSV
// export consume: one line per alumni across all survey tables.
type AlumniRow struct {
	ID                         string     `json:"id"`
	Name                       string     `json:"name"`
	Email                      string     `json:"email"`
	CreatedAt                  time.Time  `json:"created_at"`
	MobileNumber               string     `json:"mobile_number"`
	CivilStatus                string     `json:"civil_status"`
	Sex                        string     `json:"sex"`
	PermanentAddress           string     `json:"permanent_address"`
	RegionOfOrigin             string     `json:"region_of_origin"`
	Province                   string     `json:"province"`
	Degree                     string     `json:"degree"`
	Specialization             string     `json:"specialization"`
	CollegeUniversity          string     `json:"college_university"`
	YearGraduated              string     `json:"year_graduated"`
	HonorsAwards               string     `json:"honors_awards"`
	IsEmployed                 string     `json:"is_employed"`
	PresentOccupation          string     `json:"present_occupation"`
	BusinessLine               string     `json:"business_line"`
	PlaceOfWork                string     `json:"place_of_work"`
	JobLevelCurrent            string     `json:"job_level_current"`
	InitialGrossMonthlyEarning string     `json:"initial_gross_monthly_earning"`
	CurriculumRelevant         string     `json:"curriculum_relevant"`
	SurveyCompleted            bool       `json:"survey_completed"`
	SurveyCompletedAt          *time.Time `json:"survey_completed_at"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type JobLevelCount struct {
	JobLevel string `json:"job_level"`
	Count    int64  `json:"count"`
}

type GraduationYearStat struct {
	YearGraduated  string  `json:"year_graduated"`
	TotalGraduates int64   `json:"total_graduates"`
	Employed       int64   `json:"employed"`
	EmploymentRate float64 `json:"employment_rate"`
}

type DegreeProgramStat struct {
	Degree     string `json:"degree"`
	Total      int64  `json:"total"`
	Employed   int64  `json:"employed"`
	Unemployed int64  `json:"unemployed"`
}

type IndustryCount struct {
	BusinessLine string `json:"business_line"`
	Count        int64  `json:"count"`
}

type SalaryCount struct {
	SalaryRange string `json:"salary_range"`
	Count       int64  `json:"count"`
}

type AlumniRepository interface {
	List(ctx context.Context) ([]AlumniRow, error)
	GetByID(ctx context.Context, userID string) (*AlumniRow, error)

	CountUsers(ctx context.Context) (int64, error)
	CountCompletedSurveys(ctx context.Context) (int64, error)
	EmploymentStatusCounts(ctx context.Context) ([]StatusCount, error)
	JobLevelCounts(ctx context.Context) ([]JobLevelCount, error)
	GraduationYearStats(ctx context.Context) ([]GraduationYearStat, error)
	DegreeProgramStats(ctx context.Context) ([]DegreeProgramStat, error)
	TopIndustries(ctx context.Context, limit int) ([]IndustryCount, error)
	SalaryDistribution(ctx context.Context) ([]SalaryCount, error)
}

type alumniRepo struct {
	db *gorm.DB
}

func NewAlumniRepo(db *gorm.DB) AlumniRepository {
	return &alumniRepo{db: db}
}

const rosterSelect = `
SELECT
  u.id,
  u.name,
  u.email,
  u.created_at,
  COALESCE(gp.mobile_number, '') AS mobile_number,
  COALESCE(gp.civil_status, '') AS civil_status,
  COALESCE(gp.sex, '') AS sex,
  COALESCE(gp.permanent_address, '') AS permanent_address,
  COALESCE(gp.region_of_origin, '') AS region_of_origin,
  COALESCE(gp.province, '') AS province,
  COALESCE(eb.degree, '') AS degree,
  COALESCE(eb.specialization, '') AS specialization,
  COALESCE(eb.college_university, '') AS college_university,
  COALESCE(eb.year_graduated, '') AS year_graduated,
  COALESCE(eb.honors_awards, '') AS honors_awards,
  COALESCE(ed.is_employed, '') AS is_employed,
  COALESCE(ed.present_occupation, '') AS present_occupation,
  COALESCE(ed.business_line, '') AS business_line,
  COALESCE(ed.place_of_work, '') AS place_of_work,
  COALESCE(ed.job_level_current, '') AS job_level_current,
  COALESCE(ed.initial_gross_monthly_earning, '') AS initial_gross_monthly_earning,
  COALESCE(ed.curriculum_relevant, '') AS curriculum_relevant,
  COALESCE(sr.is_completed, ?) AS survey_completed,
  sr.completed_at AS survey_completed_at
FROM users u
LEFT JOIN graduate_profiles gp ON u.id = gp.user_id
LEFT JOIN educational_background eb ON u.id = eb.user_id
LEFT JOIN employment_data ed ON u.id = ed.user_id
LEFT JOIN survey_responses sr ON u.id = sr.user_id
WHERE u.role = 'user'`

func (r *alumniRepo) List(ctx context.Context) ([]AlumniRow, error) {
	var rows []AlumniRow
	err := r.db.WithContext(ctx).
		Raw(rosterSelect+" ORDER BY u.created_at DESC", false).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) GetByID(ctx context.Context, userID string) (*AlumniRow, error) {
	var row AlumniRow
	res := r.db.WithContext(ctx).
		Raw(rosterSelect+" AND u.id = ?", false, userID).
		Scan(&row)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, utils.ErrNotFound
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, utils.ErrNotFound
	}
	return &row, nil
}

func (r *alumniRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("role = ?", models.RoleUser).
		Count(&count).Error
	return count, err
}

func (r *alumniRepo) CountCompletedSurveys(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.SurveyResponse{}).
		Where("is_completed = ?", true).
		Count(&count).Error
	return count, err
}

func (r *alumniRepo) EmploymentStatusCounts(ctx context.Context) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Raw(`
SELECT ed.is_employed AS status, COUNT(*) AS count
FROM employment_data ed
JOIN survey_responses sr ON ed.user_id = sr.user_id
WHERE sr.is_completed = ?
GROUP BY ed.is_employed`, true).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) JobLevelCounts(ctx context.Context) ([]JobLevelCount, error) {
	var rows []JobLevelCount
	err := r.db.WithContext(ctx).
		Raw(`
SELECT ed.job_level_current AS job_level, COUNT(*) AS count
FROM employment_data ed
JOIN survey_responses sr ON ed.user_id = sr.user_id
WHERE sr.is_completed = ? AND ed.is_employed = ? AND ed.job_level_current <> ''
GROUP BY ed.job_level_current`, true, models.EmployedYes).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) GraduationYearStats(ctx context.Context) ([]GraduationYearStat, error) {
	var rows []GraduationYearStat
	err := r.db.WithContext(ctx).
		Raw(`
SELECT
  eb.year_graduated,
  COUNT(*) AS total_graduates,
  SUM(CASE WHEN ed.is_employed = ? THEN 1 ELSE 0 END) AS employed,
  ROUND(SUM(CASE WHEN ed.is_employed = ? THEN 1 ELSE 0 END) * 100.0 / COUNT(*), 1) AS employment_rate
FROM educational_background eb
JOIN survey_responses sr ON eb.user_id = sr.user_id
LEFT JOIN employment_data ed ON eb.user_id = ed.user_id
WHERE sr.is_completed = ? AND eb.year_graduated <> ''
GROUP BY eb.year_graduated
ORDER BY eb.year_graduated DESC`, models.EmployedYes, models.EmployedYes, true).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) DegreeProgramStats(ctx context.Context) ([]DegreeProgramStat, error) {
	var rows []DegreeProgramStat
	err := r.db.WithContext(ctx).
		Raw(`
SELECT
  eb.degree,
  COUNT(*) AS total,
  SUM(CASE WHEN ed.is_employed = ? THEN 1 ELSE 0 END) AS employed,
  SUM(CASE WHEN ed.is_employed IS NULL OR ed.is_employed <> ? THEN 1 ELSE 0 END) AS unemployed
FROM educational_background eb
JOIN survey_responses sr ON eb.user_id = sr.user_id
LEFT JOIN employment_data ed ON eb.user_id = ed.user_id
WHERE sr.is_completed = ? AND eb.degree <> ''
GROUP BY eb.degree
ORDER BY total DESC`, models.EmployedYes, models.EmployedYes, true).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) TopIndustries(ctx context.Context, limit int) ([]IndustryCount, error) {
	if limit <= 0 {
		limit = 10
	}
	var rows []IndustryCount
	err := r.db.WithContext(ctx).
		Raw(`
SELECT ed.business_line, COUNT(*) AS count
FROM employment_data ed
JOIN survey_responses sr ON ed.user_id = sr.user_id
WHERE sr.is_completed = ? AND ed.is_employed = ? AND ed.business_line <> ''
GROUP BY ed.business_line
ORDER BY count DESC
LIMIT ?`, true, models.EmployedYes, limit).
		Scan(&rows).Error
	return rows, err
}

func (r *alumniRepo) SalaryDistribution(ctx context.Context) ([]SalaryCount, error) {
	var rows []SalaryCount
	err := r.db.WithContext(ctx).
		Raw(`
SELECT ed.initial_gross_monthly_earning AS salary_range, COUNT(*) AS count
FROM employment_data ed
JOIN survey_responses sr ON ed.user_id = sr.user_id
WHERE sr.is_completed = ? AND ed.is_employed = ? AND ed.initial_gross_monthly_earning <> ''
GROUP BY ed.initial_gross_monthly_earning
ORDER BY count DESC`, true, models.EmployedYes).
		Scan(&rows).Error
	return rows, err
}
