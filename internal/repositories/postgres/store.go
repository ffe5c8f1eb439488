package postgres

import (
	"context"

	"github.com/alumify/backend/internal/models"
	"gorm.io/gorm"
)

// Store bundles the per-table repositories over one gorm handle so a service
// can run several of them inside a single transaction.
type Store struct {
	db *gorm.DB

	Users      UserRepository
	Profiles   ProfileRepository
	Education  EducationRepository
	Employment EmploymentRepository
	Surveys    SurveyRepository
	Activities ActivityRepository
	Alumni     AlumniRepository
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      NewUserRepo(db),
		Profiles:   NewProfileRepo(db),
		Education:  NewEducationRepo(db),
		Employment: NewEmploymentRepo(db),
		Surveys:    NewSurveyRepo(db),
		Activities: NewActivityRepo(db),
		Alumni:     NewAlumniRepo(db),
	}
}

// Transaction runs fn against a transaction-scoped Store. Any error from fn
// rolls back every write made through it.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.GraduateProfile{},
		&models.EducationalBackground{},
		&models.EmploymentData{},
		&models.CourseReason{},
		&models.UnemploymentReason{},
		&models.UsefulCompetency{},
		&models.CurriculumSuggestion{},
		&models.SurveyResponse{},
		&models.ActivityLog{},
	)
}
