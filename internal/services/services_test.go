package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alumify/backend/internal/models"
	pgrepo "github.com/alumify/backend/internal/repositories/postgres"
)

func newTestStore(t *testing.T) *pgrepo.Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, pgrepo.AutoMigrate(db))
	return pgrepo.NewStore(db)
}

func seedAlum(t *testing.T, s *pgrepo.Store, role models.UserRole) *models.User {
	t.Helper()

	now := time.Now().UTC()
	u := &models.User{
		ID:        uuid.NewString(),
		Name:      "Juan Dela Cruz",
		Email:     uuid.NewString() + "@example.com",
		Password:  "hashed",
		Role:      role,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return u
}

// fakeCache is an in-memory Cache for asserting invalidation behavior.
type fakeCache struct {
	data    map[string][]byte
	deleted []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (f *fakeCache) GetJSON(_ context.Context, key string, dst any) (bool, error) {
	raw, ok := f.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dst)
}

func (f *fakeCache) SetJSON(_ context.Context, key string, val any, _ time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.data, k)
		f.deleted = append(f.deleted, k)
	}
	return nil
}

type fakeUploader struct {
	objects map[string][]byte
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: map[string][]byte{}}
}

func (f *fakeUploader) Upload(_ context.Context, objectName, _ string, r io.Reader) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.objects[objectName] = data
	return "fake://bucket/" + objectName, nil
}

// validSubmission is a complete employed-branch payload; tests mutate the
// copy to exercise the conditional rules.
func validSubmission() *SurveySubmission {
	return &SurveySubmission{
		Personal: PersonalSection{
			FullName:         "Maria Clara",
			PermanentAddress: "123 Rizal St, Calamba",
			MobileNumber:     "09171234567",
			CivilStatus:      "Single",
			Sex:              "Female",
			Birthday:         "1999-06-19",
			RegionOfOrigin:   "Region IV-A",
			Province:         "Laguna",
			LocationType:     "City",
		},
		Education: EducationSection{
			Degree:            "BS Information Technology",
			Specialization:    "Web Development",
			CollegeUniversity: "State University",
			YearGraduated:     "2022",
			HonorsAwards:      "Cum Laude",
		},
		Employment: EmploymentSection{
			IsEmployed:                 models.EmployedYes,
			EmploymentStatus:           "Regular",
			PresentOccupation:          "Software Developer",
			BusinessLine:               "Information Technology",
			PlaceOfWork:                "Local",
			IsFirstJob:                 "No",
			JobLevelFirst:              "Rank or Clerical",
			JobLevelCurrent:            "Professional",
			InitialGrossMonthlyEarning: "P20,000 to less than P25,000",
			CurriculumRelevant:         "Yes",
		},
		CourseReasons:        []string{"High grades in the course", "Good grades in high school"},
		UsefulCompetencies:   []string{"Communication skills", "IT skills"},
		CurriculumSuggestion: "More hands-on projects",
	}
}

func recentDescriptions(t *testing.T, s *pgrepo.Store) []string {
	t.Helper()
	rows, err := s.Activities.Recent(context.Background(), 50)
	require.NoError(t, err)
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Description)
	}
	return out
}
