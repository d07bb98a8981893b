package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitebuilder-backend/shared/database/models"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateAccessJWT(userID, "jane@example.com", models.RoleUser)
	require.NoError(t, err)

	claims, err := ValidateAccessJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
	assert.Empty(t, claims.Purpose)
}

func TestTokensAreNotInterchangeable(t *testing.T) {
	userID := uuid.New()

	refresh, err := GenerateRefreshJWT(userID, "jane@example.com", models.RoleUser)
	require.NoError(t, err)
	_, err = ValidateAccessJWT(refresh)
	assert.Error(t, err, "refresh token must not pass access validation")

	access, err := GenerateAccessJWT(userID, "jane@example.com", models.RoleUser)
	require.NoError(t, err)
	_, err = ValidateRefreshJWT(access)
	assert.Error(t, err, "access token must not pass refresh validation")

	verification, err := GenerateEmailVerificationJWT(userID, "jane@example.com")
	require.NoError(t, err)
	_, err = ValidatePasswordResetJWT(verification)
	assert.Error(t, err, "verification token must not pass reset validation")
}

func TestPasswordResetTokenCarriesPurpose(t *testing.T) {
	userID := uuid.New()

	token, err := GeneratePasswordResetJWT(userID, "jane@example.com")
	require.NoError(t, err)

	claims, err := ValidatePasswordResetJWT(token)
	require.NoError(t, err)
	assert.Equal(t, PurposePasswordReset, claims.Purpose)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateRefreshJWT(userID, "jane@example.com", models.RoleAdmin)
	require.NoError(t, err)

	claims, err := ValidateRefreshJWT(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestGarbageTokenRejected(t *testing.T) {
	_, err := ValidateAccessJWT("not-a-token")
	assert.Error(t, err)
}
