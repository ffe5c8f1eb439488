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

func TestStore_Transaction_RollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	boom := errors.New("boom")
	err := s.Transaction(ctx, func(tx *Store) error {
		if err := tx.Profiles.Upsert(ctx, &models.GraduateProfile{
			UserID:       u.ID,
			MobileNumber: "09171234567",
			UpdatedAt:    time.Now().UTC(),
		}); err != nil {
			return err
		}
		if err := tx.Surveys.MarkCompleted(ctx, u.ID, time.Now().UTC()); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	// nothing written inside the failed transaction is visible
	_, err = s.Profiles.GetByUserID(ctx, u.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
	_, err = s.Surveys.GetResponse(ctx, u.ID)
	assert.True(t, errors.Is(err, utils.ErrNotFound))
}

func TestStore_Transaction_CommitsOnSuccess(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	err := s.Transaction(ctx, func(tx *Store) error {
		return tx.Surveys.MarkCompleted(ctx, u.ID, time.Now().UTC())
	})
	require.NoError(t, err)

	resp, err := s.Surveys.GetResponse(ctx, u.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsCompleted)
}

func TestActivityRepo_Recent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	base := time.Now().UTC().Add(-time.Hour)
	for i, typ := range []string{models.ActivityRegistration, models.ActivityLogin, models.ActivitySurveyCompleted} {
		require.NoError(t, s.Activities.Append(ctx, &models.ActivityLog{
			UserID:       u.ID,
			ActivityType: typ,
			Description:  typ,
			CreatedAt:    base.Add(time.Duration(i) * time.Minute),
		}))
	}

	rows, err := s.Activities.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// newest first, joined with the actor's name
	assert.Equal(t, models.ActivitySurveyCompleted, rows[0].ActivityType)
	assert.Equal(t, u.Name, rows[0].UserName)

	// limit <= 0 falls back to the default window
	rows, err = s.Activities.Recent(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestActivityRepo_DeleteByUserID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, models.RoleUser)

	require.NoError(t, s.Activities.Append(ctx, &models.ActivityLog{
		UserID:       u.ID,
		ActivityType: models.ActivityLogin,
		Description:  "User logged in",
	}))
	require.NoError(t, s.Activities.DeleteByUserID(ctx, u.ID))

	rows, err := s.Activities.Recent(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
