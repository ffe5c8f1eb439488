package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alumify/backend/internal/models"
	"github.com/alumify/backend/internal/utils"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	got, err := s.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	got, err = s.Users.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	exists, err := s.Users.EmailExists(ctx, u.Email)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.Users.EmailExists(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.Users.GetByID(ctx, "missing")
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestUserRepo_UpdateIdentity(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	require.NoError(t, s.Users.UpdateIdentity(ctx, u.ID, "Maria Clara", "maria@example.com"))

	got, err := s.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Clara", got.Name)
	assert.Equal(t, "maria@example.com", got.Email)
}

func TestUserRepo_AcceptPrivacy(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	at := time.Now().UTC()
	require.NoError(t, s.Users.AcceptPrivacy(ctx, u.ID, at))

	got, err := s.Users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, got.PrivacyAccepted)
	require.NotNil(t, got.PrivacyAcceptedAt)
}

func TestUserRepo_Delete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	alum := seedUser(t, s, models.RoleUser)
	admin := seedUser(t, s, models.RoleAdmin)

	// admin accounts are not deletable through this path
	err := s.Users.Delete(ctx, admin.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	require.NoError(t, s.Users.Delete(ctx, alum.ID))
	_, err = s.Users.GetByID(ctx, alum.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))

	// already gone
	err = s.Users.Delete(ctx, alum.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
