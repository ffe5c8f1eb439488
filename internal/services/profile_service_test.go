package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
)

func TestProfileService_Me(t *testing.T) {
	store := newTestStore(t)
	surveys := NewSurveyService(store, nil)
	svc := NewProfileService(store)
	ctx := context.Background()
	u := seedAlum(t, store, models.RoleUser)

	// before any submission the joined view is zero-valued but complete
	p, err := svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.ID, p.User.ID)
	assert.Empty(t, p.User.Password)
	assert.False(t, p.Survey.IsCompleted)
	assert.Empty(t, p.CourseReasons)

	require.NoError(t, surveys.Submit(ctx, u.ID, validSubmission()))

	p, err = svc.Me(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", p.User.Name)
	assert.Equal(t, "Laguna", p.Profile.Province)
	assert.Equal(t, "BS Information Technology", p.Education.Degree)
	assert.Equal(t, models.EmployedYes, p.Employment.IsEmployed)
	assert.Len(t, p.CourseReasons, 2)
	assert.Len(t, p.UsefulCompetencies, 2)
	assert.Equal(t, "More hands-on projects", p.CurriculumSuggestion)
	assert.True(t, p.Survey.IsCompleted)
}

func TestProfileService_Me_NotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store)

	_, err := svc.Me(context.Background(), "missing")
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestProfileService_UpdateOwn(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store)
	ctx := context.Background()
	u := seedAlum(t, store, models.RoleUser)

	require.NoError(t, svc.UpdateOwn(ctx, u.ID, &OwnProfileUpdate{
		Name: "Crisostomo Ibarra",
		Personal: PersonalSection{
			PermanentAddress: "San Diego",
			MobileNumber:     "09170000000",
			CivilStatus:      "Single",
			Sex:              "Male",
		},
	}))

	user, err := store.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crisostomo Ibarra", user.Name)

	profile, err := store.Profiles.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "San Diego", profile.PermanentAddress)

	assert.Contains(t, recentDescriptions(t, store), "User updated profile")
}

func TestProfileService_UpdateOwn_NameRequired(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store)
	u := seedAlum(t, store, models.RoleUser)

	err := svc.UpdateOwn(context.Background(), u.ID, &OwnProfileUpdate{})
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestProfileService_UpdateFull_Overwrites(t *testing.T) {
	store := newTestStore(t)
	surveys := NewSurveyService(store, nil)
	svc := NewProfileService(store)
	ctx := context.Background()

	admin := seedAlum(t, store, models.RoleAdmin)
	u := seedAlum(t, store, models.RoleUser)
	require.NoError(t, surveys.Submit(ctx, u.ID, validSubmission()))

	// sparse payload: untouched fields are written back as empty, and the
	// employment row is stored exactly as sent
	require.NoError(t, svc.UpdateFull(ctx, admin.ID, u.ID, &FullProfile{
		Name: "Renamed Alum",
		Personal: PersonalSection{
			MobileNumber: "09998887777",
		},
		Employment: EmploymentSection{
			IsEmployed:        models.EmployedNo,
			PresentOccupation: "kept as sent",
		},
	}))

	user, err := store.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Renamed Alum", user.Name)
	// empty email falls back to the existing one
	assert.Equal(t, u.Email, user.Email)

	profile, err := store.Profiles.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "09998887777", profile.MobileNumber)
	assert.Empty(t, profile.Province)

	edu, err := store.Education.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, edu.Degree)

	emp, err := store.Employment.GetByUserID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmployedNo, emp.IsEmployed)
	assert.Equal(t, "kept as sent", emp.PresentOccupation)

	// survey answers and completion are out of scope for the profile edit
	reasons, err := store.Surveys.ListCourseReasons(ctx, u.ID)
	require.NoError(t, err)
	assert.Len(t, reasons, 2)
	resp, err := store.Surveys.GetResponse(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsCompleted)

	// the admin edit is logged against the admin
	assert.Contains(t, recentDescriptions(t, store), "Admin updated profile for Renamed Alum")
}

func TestProfileService_UpdateFull_TargetNotFound(t *testing.T) {
	store := newTestStore(t)
	svc := NewProfileService(store)
	admin := seedAlum(t, store, models.RoleAdmin)

	err := svc.UpdateFull(context.Background(), admin.ID, "missing", &FullProfile{Name: "x"})
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}
