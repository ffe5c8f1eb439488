package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/utils"
)

// AlumniProfile is the joined self-service view: the user row plus every
// survey table, with the multi-value sets flattened to string slices.
type AlumniProfile struct {
	User                 models.User                  `json:"user"`
	Profile              models.GraduateProfile       `json:"graduate_profile"`
	Education            models.EducationalBackground `json:"educational_background"`
	Employment           models.EmploymentData        `json:"employment_data"`
	CourseReasons        []string                     `json:"course_reasons"`
	UnemploymentReasons  []string                     `json:"unemployment_reasons"`
	UsefulCompetencies   []string                     `json:"useful_competencies"`
	CurriculumSuggestion string                       `json:"curriculum_suggestions"`
	Survey               models.SurveyResponse        `json:"survey_response"`
}

// OwnProfileUpdate is the self-service edit: identity name plus the
// personal section. Non-survey fields only.
type OwnProfileUpdate struct {
	Name     string          `json:"name"`
	Personal PersonalSection `json:"personal"`
}

type ProfileService interface {
	Me(ctx context.Context, userID string) (*AlumniProfile, error)
	UpdateOwn(ctx context.Context, userID string, upd *OwnProfileUpdate) error
	// UpdateFull overwrites the identity columns and all three one-to-one
	// tables from a flat payload. Missing fields become empty values; no
	// conditional validation applies. The actor is always the verified
	// caller, passed explicitly.
	UpdateFull(ctx context.Context, actorID, targetID string, p *FullProfile) error
}

type profileService struct {
	store *pgrepo.Store
}

func NewProfileService(store *pgrepo.Store) ProfileService {
	return &profileService{store: store}
}

func (s *profileService) Me(ctx context.Context, userID string) (*AlumniProfile, error) {
	const op = "ProfileService.Me"

	if userID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "user_id is required", nil)
	}

	user, err := s.store.Users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "profile not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	out := &AlumniProfile{User: *user}
	out.User.Password = ""

	if p, err := s.store.Profiles.GetByUserID(ctx, userID); err == nil {
		out.Profile = *p
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load graduate profile", err)
	}
	if e, err := s.store.Education.GetByUserID(ctx, userID); err == nil {
		out.Education = *e
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load educational background", err)
	}
	if e, err := s.store.Employment.GetByUserID(ctx, userID); err == nil {
		out.Employment = *e
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load employment data", err)
	}

	if out.CourseReasons, err = s.store.Surveys.ListCourseReasons(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load course reasons", err)
	}
	if out.UnemploymentReasons, err = s.store.Surveys.ListUnemploymentReasons(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load unemployment reasons", err)
	}
	if out.UsefulCompetencies, err = s.store.Surveys.ListCompetencies(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load competencies", err)
	}
	if out.CurriculumSuggestion, err = s.store.Surveys.GetSuggestion(ctx, userID); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to load curriculum suggestion", err)
	}

	if resp, err := s.store.Surveys.GetResponse(ctx, userID); err == nil {
		out.Survey = *resp
	} else if !errors.Is(err, utils.ErrNotFound) {
		return nil, utils.E(utils.CodeInternal, op, "failed to load survey status", err)
	} else {
		out.Survey = models.SurveyResponse{UserID: userID}
	}

	return out, nil
}

func (s *profileService) UpdateOwn(ctx context.Context, userID string, upd *OwnProfileUpdate) error {
	const op = "ProfileService.UpdateOwn"

	if userID == "" || upd == nil {
		return utils.E(utils.CodeInvalidArgument, op, "user_id and update are required", nil)
	}
	if upd.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}

	if _, err := s.store.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "user not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load user", err)
	}

	now := time.Now().UTC()
	err := s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.UpdateName(ctx, userID, upd.Name); err != nil {
			return err
		}
		if err := tx.Profiles.Upsert(ctx, profileRow(userID, upd.Personal, now)); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       userID,
			ActivityType: models.ActivityProfileUpdated,
			Description:  "User updated profile",
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update profile", err)
	}
	return nil
}

func (s *profileService) UpdateFull(ctx context.Context, actorID, targetID string, p *FullProfile) error {
	const op = "ProfileService.UpdateFull"

	if actorID == "" || targetID == "" || p == nil {
		return utils.E(utils.CodeInvalidArgument, op, "actor_id, target_id and payload are required", nil)
	}
	if p.Name == "" {
		return utils.E(utils.CodeInvalidArgument, op, "name is required", nil)
	}

	target, err := s.store.Users.GetByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "alumni not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load alumni", err)
	}

	email := p.Email
	if email == "" {
		email = target.Email
	}

	description := fmt.Sprintf("Admin updated profile for %s", p.Name)
	if actorID == targetID {
		description = "User updated profile"
	}

	now := time.Now().UTC()
	err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		if err := tx.Users.UpdateIdentity(ctx, targetID, p.Name, email); err != nil {
			return err
		}
		if err := tx.Profiles.Upsert(ctx, profileRow(targetID, p.Personal, now)); err != nil {
			return err
		}
		if err := tx.Education.Upsert(ctx, educationRow(targetID, p.Education, now)); err != nil {
			return err
		}
		// Full overwrite: the employment row is written exactly as sent,
		// with no conditional gating. This path trusts the caller.
		if err := tx.Employment.Upsert(ctx, &models.EmploymentData{
			UserID:                     targetID,
			IsEmployed:                 p.Employment.IsEmployed,
			EmploymentStatus:           p.Employment.EmploymentStatus,
			PresentOccupation:          p.Employment.PresentOccupation,
			BusinessLine:               p.Employment.BusinessLine,
			PlaceOfWork:                p.Employment.PlaceOfWork,
			IsFirstJob:                 p.Employment.IsFirstJob,
			JobLevelFirst:              p.Employment.JobLevelFirst,
			JobLevelCurrent:            p.Employment.JobLevelCurrent,
			InitialGrossMonthlyEarning: p.Employment.InitialGrossMonthlyEarning,
			CurriculumRelevant:         p.Employment.CurriculumRelevant,
			UpdatedAt:                  now,
		}); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       actorID,
			ActivityType: models.ActivityProfileUpdated,
			Description:  description,
		})
	})
	if err != nil {
		return utils.E(utils.CodeInternal, op, "failed to update alumni profile", err)
	}
	return nil
}
