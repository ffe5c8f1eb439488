package services

import (
	"fmt"
	"strings"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
)

// PersonalSection is the contact/demographic page of the questionnaire.
type PersonalSection struct {
	FullName         string `json:"full_name"`
	PermanentAddress string `json:"permanent_address"`
	Telephone        string `json:"telephone"`
	MobileNumber     string `json:"mobile_number"`
	CivilStatus      string `json:"civil_status"`
	Sex              string `json:"sex"`
	Birthday         string `json:"birthday"`
	RegionOfOrigin   string `json:"region_of_origin"`
	Province         string `json:"province"`
	LocationType     string `json:"location_type"`
}

type EducationSection struct {
	Degree            string `json:"degree"`
	Specialization    string `json:"specialization"`
	CollegeUniversity string `json:"college_university"`
	YearGraduated     string `json:"year_graduated"`
	HonorsAwards      string `json:"honors_awards"`
}

// EmploymentSection carries the tri-state employment answer plus the fields
// that are only required for the "Yes" branch.
type EmploymentSection struct {
	IsEmployed                 models.EmploymentFlag `json:"is_employed"`
	EmploymentStatus           string                `json:"employment_status"`
	PresentOccupation          string                `json:"present_occupation"`
	BusinessLine               string                `json:"business_line"`
	PlaceOfWork                string                `json:"place_of_work"`
	IsFirstJob                 string                `json:"is_first_job"`
	JobLevelFirst              string                `json:"job_level_first"`
	JobLevelCurrent            string                `json:"job_level_current"`
	InitialGrossMonthlyEarning string                `json:"initial_gross_monthly_earning"`
	CurriculumRelevant         string                `json:"curriculum_relevant"`
}

func (e EmploymentSection) Employed() bool { return e.IsEmployed == models.EmployedYes }

// SurveySubmission is the full six-section payload accepted by
// SurveyService.Submit.
type SurveySubmission struct {
	Personal   PersonalSection   `json:"personal"`
	Education  EducationSection  `json:"education"`
	Employment EmploymentSection `json:"employment"`

	CourseReasons        []string `json:"course_reasons"`
	UnemploymentReasons  []string `json:"unemployment_reasons"`
	UsefulCompetencies   []string `json:"useful_competencies"`
	CurriculumSuggestion string   `json:"curriculum_suggestions"`
}

// Validate enforces the conditional required-field rules before any write:
// the personal and education sections are always required; the employment
// follow-on fields only when the flag is "Yes", and at least one
// unemployment reason otherwise. Violations are collected so the caller
// sees every missing field at once.
func (s *SurveySubmission) Validate() error {
	const op = "SurveySubmission.Validate"

	var missing []string
	req := func(field, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}

	req("full_name", s.Personal.FullName)
	req("permanent_address", s.Personal.PermanentAddress)
	req("mobile_number", s.Personal.MobileNumber)
	req("civil_status", s.Personal.CivilStatus)
	req("sex", s.Personal.Sex)
	req("birthday", s.Personal.Birthday)

	req("degree", s.Education.Degree)
	req("specialization", s.Education.Specialization)
	req("college_university", s.Education.CollegeUniversity)
	req("year_graduated", s.Education.YearGraduated)

	if !s.Employment.IsEmployed.Valid() {
		missing = append(missing, "is_employed")
	} else if s.Employment.Employed() {
		req("employment_status", s.Employment.EmploymentStatus)
		req("present_occupation", s.Employment.PresentOccupation)
		req("business_line", s.Employment.BusinessLine)
		req("place_of_work", s.Employment.PlaceOfWork)
		req("is_first_job", s.Employment.IsFirstJob)
		req("job_level_first", s.Employment.JobLevelFirst)
		req("job_level_current", s.Employment.JobLevelCurrent)
		req("initial_gross_monthly_earning", s.Employment.InitialGrossMonthlyEarning)
		req("curriculum_relevant", s.Employment.CurriculumRelevant)
	} else if len(s.UnemploymentReasons) == 0 {
		missing = append(missing, "unemployment_reasons")
	}

	if len(missing) > 0 {
		return utils.E(utils.CodeInvalidArgument, op,
			fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", ")), nil)
	}
	return nil
}

// normalized returns the answer sets as they should be persisted. The
// competencies question is only asked when the curriculum was relevant;
// answers smuggled in outside that branch are dropped. Unemployment reasons
// are likewise meaningless for the employed branch.
func (s *SurveySubmission) normalized() (courseReasons, unemploymentReasons, competencies []string) {
	courseReasons = s.CourseReasons
	if s.Employment.Employed() {
		unemploymentReasons = nil
	} else {
		unemploymentReasons = s.UnemploymentReasons
	}
	if s.Employment.CurriculumRelevant == "Yes" {
		competencies = s.UsefulCompetencies
	}
	return courseReasons, unemploymentReasons, competencies
}

// EmploymentUpdate is the post-completion edit: only the status-related
// employment columns remain editable once the survey is done.
type EmploymentUpdate struct {
	IsEmployed        models.EmploymentFlag `json:"is_employed"`
	EmploymentStatus  string                `json:"employment_status"`
	PresentOccupation string                `json:"present_occupation"`
	BusinessLine      string                `json:"business_line"`
	PlaceOfWork       string                `json:"place_of_work"`
}

func (u *EmploymentUpdate) Validate() error {
	const op = "EmploymentUpdate.Validate"
	if !u.IsEmployed.Valid() {
		return utils.E(utils.CodeInvalidArgument, op, "is_employed must be Yes, No, or Never Employed", nil)
	}
	return nil
}

// FullProfile is the administrative overwrite payload: every field of the
// three one-to-one tables plus the identity columns. Fields left empty are
// written as empty, not skipped.
type FullProfile struct {
	Name  string `json:"name"`
	Email string `json:"email"`

	Personal   PersonalSection   `json:"personal"`
	Education  EducationSection  `json:"education"`
	Employment EmploymentSection `json:"employment"`
}
