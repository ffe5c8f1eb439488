package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cretpass", hash)

	assert.NoError(t, CheckPassword(hash, "s3cretpass"))
	assert.Error(t, CheckPassword(hash, "wrong"))
}

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := IssueToken("user-1", "maria@example.com", "admin")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)

	_, err = ParseToken(token + "tampered")
	assert.Error(t, err)
}

func TestAppErrorCodes(t *testing.T) {
	err := E(CodeConflict, "SurveyService.Submit", "survey already completed", nil)
	assert.True(t, IsCode(err, CodeConflict))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.Equal(t, http.StatusConflict, HTTPStatus(err))

	wrapped := E(CodeNotFound, "Op", "missing", ErrNotFound)
	assert.True(t, errors.Is(wrapped, ErrNotFound))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(wrapped))

	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("plain")))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
}

func TestAppErrorMessage(t *testing.T) {
	err := E(CodeInternal, "Repo.Get", "query failed", errors.New("timeout"))
	assert.Equal(t, "Repo.Get: query failed: timeout", err.Error())
}
