package services

import (
	"context"
	"errors"
	"time"

	"github.com/alumify/backend/internal/cache"
	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/utils"
)

// SurveyService reconciles survey submissions into the per-user record set.
// Submit is the all-or-nothing path and may be re-run: every write in it is
// an upsert or a full replacement against the current record set. Callers
// that want one submission per user enforce that themselves (the HTTP layer
// does). UpdateEmployment is the narrow post-completion edit that leaves
// every other table alone.
type SurveyService interface {
	Submit(ctx context.Context, userID string, sub *SurveySubmission) error
	UpdateEmployment(ctx context.Context, userID string, upd *EmploymentUpdate) error
	Status(ctx context.Context, userID string) (*models.SurveyResponse, error)
	EmploymentData(ctx context.Context, userID string) (*models.EmploymentData, error)
}

type surveyService struct {
	store *pgrepo.Store
	cache cache.Cache // optional; analytics snapshots are dropped on submit
}

func NewSurveyService(store *pgrepo.Store, c cache.Cache) SurveyService {
	return &surveyService{store: store, cache: c}
}

func (s *surveyService) Submit(ctx context.Context, userID string, sub *SurveySubmission) error {
	const op = "SurveyService.Submit"

	if userID == "" || sub == nil {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and submission are required", nil)
	}

	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if user.Role != models.RoleUser {
		return utils.E(utils.CodeForbidden, op, "only alumni accounts can submit the survey", nil)
	}

	// Validation runs to completion before the transaction opens; a
	// rejected payload never touches the store.
	if err := sub.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	courseReasons, unemploymentReasons, competencies := sub.normalized()

	err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.UpdateName(ctx, userID, sub.Personal.FullName); err != nil {
			return err
		}
		if err := tx.Profiles.Upsert(ctx, profileRow(userID, sub.Personal, now)); err != nil {
			return err
		}
		if err := tx.Education.Upsert(ctx, educationRow(userID, sub.Education, now)); err != nil {
			return err
		}
		if err := tx.Employment.Upsert(ctx, employmentRow(userID, sub.Employment, now)); err != nil {
			return err
		}
		if err := tx.Surveys.ReplaceCourseReasons(ctx, userID, courseReasons); err != nil {
			return err
		}
		if err := tx.Surveys.ReplaceUnemploymentReasons(ctx, userID, unemploymentReasons); err != nil {
			return err
		}
		if err := tx.Surveys.ReplaceCompetencies(ctx, userID, competencies); err != nil {
			return err
		}
		if sub.CurriculumSuggestion != "" {
			if err := tx.Surveys.UpsertSuggestion(ctx, userID, sub.CurriculumSuggestion); err != nil {
				return err
			}
		}
		if err := tx.Surveys.MarkCompleted(ctx, userID, now); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       userID,
			ActivityType: models.ActivitySurveyCompleted,
			Description:  "User completed the graduate tracer survey",
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist survey", err)
	}

	s.dropAnalytics(ctx)
	return nil
}

func (s *surveyService) UpdateEmployment(ctx context.Context, userID string, upd *EmploymentUpdate) error {
	const op = "SurveyService.UpdateEmployment"

	if userID == "" || upd == nil {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and update are required", nil)
	}
	if err := upd.Validate(); err != nil {
		return err
	}

	if _, err := s.store.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	// Keep the conditional-field invariant: the status fields only carry
	// values on the employed branch.
	occupation, businessLine, placeOfWork, status := "", "", "", ""
	if upd.IsEmployed == models.EmployedYes {
		status = upd.EmploymentStatus
		occupation = upd.PresentOccupation
		businessLine = upd.BusinessLine
		placeOfWork = upd.PlaceOfWork
	}

	err := s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Employment.UpdateStatus(ctx, userID, upd.IsEmployed, status, occupation, businessLine, placeOfWork); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       userID,
			ActivityType: models.ActivitySurveyUpdated,
			Description:  "User updated employment status",
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update employment status", err)
	}

	s.dropAnalytics(ctx)
	return nil
}

func (s *surveyService) Status(ctx context.Context, userID string) (*models.SurveyResponse, error) {
	const op = "SurveyService.Status"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	resp, err := s.store.Surveys.GetResponse(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		// no row yet means pending
		return &models.SurveyResponse{UserID: userID}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to get survey status", err)
	}
	return resp, nil
}

func (s *surveyService) EmploymentData(ctx context.Context, userID string) (*models.EmploymentData, error) {
	const op = "SurveyService.EmploymentData"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	row, err := s.store.Employment.GetByUserID(ctx, userID)
	if errors.Is(err, utils.ErrNotFound) {
		return &models.EmploymentData{UserID: userID}, nil
	}
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to get employment data", err)
	}
	return row, nil
}

func (s *surveyService) dropAnalytics(ctx context.Context) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Del(ctx, AnalyticsCacheKey)
}

func profileRow(userID string, p PersonalSection, now time.Time) *models.GraduateProfile {
	return &models.GraduateProfile{
		UserID:           userID,
		PermanentAddress: p.PermanentAddress,
		Telephone:        p.Telephone,
		MobileNumber:     p.MobileNumber,
		CivilStatus:      p.CivilStatus,
		Sex:              p.Sex,
		Birthday:         p.Birthday,
		RegionOfOrigin:   p.RegionOfOrigin,
		Province:         p.Province,
		LocationType:     p.LocationType,
		UpdatedAt:        now,
	}
}

func educationRow(userID string, e EducationSection, now time.Time) *models.EducationalBackground {
	return &models.EducationalBackground{
		UserID:            userID,
		Degree:            e.Degree,
		Specialization:    e.Specialization,
		CollegeUniversity: e.CollegeUniversity,
		YearGraduated:     e.YearGraduated,
		HonorsAwards:      e.HonorsAwards,
		UpdatedAt:         now,
	}
}

// employmentRow blanks the conditionally-required columns outside the
// employed branch so the stored row always satisfies the invariant,
// whatever the client sent.
func employmentRow(userID string, e EmploymentSection, now time.Time) *models.EmploymentData {
	row := &models.EmploymentData{
		UserID:     userID,
		IsEmployed: e.IsEmployed,
		UpdatedAt:  now,
	}
	if e.Employed() {
		row.EmploymentStatus = e.EmploymentStatus
		row.PresentOccupation = e.PresentOccupation
		row.BusinessLine = e.BusinessLine
		row.PlaceOfWork = e.PlaceOfWork
		row.IsFirstJob = e.IsFirstJob
		row.JobLevelFirst = e.JobLevelFirst
		row.JobLevelCurrent = e.JobLevelCurrent
		row.InitialGrossMonthlyEarning = e.InitialGrossMonthlyEarning
		row.CurriculumRelevant = e.CurriculumRelevant
	}
	return row
}
