package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
	"github.com/alumify/backend/internal/utils"
)

// SurveyBundle is the complete record set for one alumni, as shown on the
// admin review screen.
type SurveyBundle struct {
	User                 models.User                  `json:"user"`
	GraduateProfile      models.GraduateProfile       `json:"graduate_profile"`
	Education            models.EducationalBackground `json:"educational_background"`
	Employment           models.EmploymentData        `json:"employment_data"`
	CourseReasons        []string                     `json:"course_reasons"`
	UnemploymentReasons  []string                     `json:"unemployment_reasons"`
	UsefulCompetencies   []string                     `json:"useful_competencies"`
	CurriculumSuggestion string                       `json:"curriculum_suggestions"`
	SurveyResponse       models.SurveyResponse        `json:"survey_response"`
}

type AdminService interface {
	ListAlumni(ctx context.Context) ([]pgrepo.AlumniRow, error)
	GetSurveyBundle(ctx context.Context, alumniID string) (*SurveyBundle, error)
	// DeleteAlumni removes the user and every child row in one
	// transaction, logging the deletion against the acting admin.
	DeleteAlumni(ctx context.Context, actorID, alumniID string) error
	RecentActivities(ctx context.Context, limit int) ([]pgrepo.ActivityEntry, error)
}

type adminService struct {
	store    *pgrepo.Store
	profiles ProfileService
}

func NewAdminService(store *pgrepo.Store, profiles ProfileService) AdminService {
	return &adminService{store: store, profiles: profiles}
}

func (s *adminService) ListAlumni(ctx context.Context) ([]pgrepo.AlumniRow, error) {
	const op = "AdminService.ListAlumni"

	rows, err := s.store.Alumni.List(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list alumni", err)
	}
	return rows, nil
}

func (s *adminService) GetSurveyBundle(ctx context.Context, alumniID string) (*SurveyBundle, error) {
	const op = "AdminService.GetSurveyBundle"

	if alumniID == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "alumni_id is required", nil)
	}

	full, err := s.profiles.Me(ctx, alumniID)
	if err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "alumni not found", err)
		}
		return nil, err
	}

	return &SurveyBundle{
		User:                 full.User,
		GraduateProfile:      full.Profile,
		Education:            full.Education,
		Employment:           full.Employment,
		CourseReasons:        full.CourseReasons,
		UnemploymentReasons:  full.UnemploymentReasons,
		UsefulCompetencies:   full.UsefulCompetencies,
		CurriculumSuggestion: full.CurriculumSuggestion,
		SurveyResponse:       full.Survey,
	}, nil
}

func (s *adminService) DeleteAlumni(ctx context.Context, actorID, alumniID string) error {
	const op = "AdminService.DeleteAlumni"

	if actorID == "" || alumniID == "" {
		return utils.E(utils.CodeInvalidArgument, op, "actor_id and alumni_id are required", nil)
	}

	target, err := s.store.Users.GetByID(ctx, alumniID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "alumni not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to load alumni", err)
	}
	if target.Role != models.RoleUser {
		return utils.E(utils.CodeForbidden, op, "only alumni accounts can be deleted", nil)
	}

	err = s.store.Transaction(ctx, func(tx *pgrepo.Store) error {
		// child tables first
		if err := tx.Activities.DeleteByUserID(ctx, alumniID); err != nil {
			return err
		}
		if err := tx.Surveys.DeleteAllByUserID(ctx, alumniID); err != nil {
			return err
		}
		if err := tx.Employment.DeleteByUserID(ctx, alumniID); err != nil {
			return err
		}
		if err := tx.Education.DeleteByUserID(ctx, alumniID); err != nil {
			return err
		}
		if err := tx.Profiles.DeleteByUserID(ctx, alumniID); err != nil {
			return err
		}
		if err := tx.Users.Delete(ctx, alumniID); err != nil {
			return err
		}
		return tx.Activities.Append(ctx, &models.ActivityLog{
			UserID:       actorID,
			ActivityType: models.ActivityProfileDeleted,
			Description:  fmt.Sprintf("Admin deleted alumni account %s", target.Name),
		})
	})
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "alumni not found", err)
		}
		return utils.E(utils.CodeInternal, op, "failed to delete alumni", err)
	}
	return nil
}

func (s *adminService) RecentActivities(ctx context.Context, limit int) ([]pgrepo.ActivityEntry, error) {
	const op = "AdminService.RecentActivities"

	rows, err := s.store.Activities.Recent(ctx, limit)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list activities", err)
	}
	return rows, nil
}
