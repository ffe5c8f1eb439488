package postgres

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/alumify/backend/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))
	return NewStore(db)
}

func seedUser(t *testing.T, s *Store, role models.UserRole) *models.User {
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
