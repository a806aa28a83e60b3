package auth

import (
	"testing"
	"time"

	"stmarys-portal/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("S3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret-pass", hash)

	assert.True(t, CheckPasswordHash("S3cret-pass", hash))
	assert.False(t, CheckPasswordHash("wrong-pass", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	token, err := GenerateJWT("user-1", "jane@school.ug", "Jane", "Doe", models.UserTypeTeacher)
	require.NoError(t, err)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@school.ug", claims.Email)
	assert.Equal(t, models.UserTypeTeacher, claims.UserType)
	assert.Equal(t, "stmarys-portal", claims.Issuer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestSessionHelpers(t *testing.T) {
	a, b := GenerateSessionID(), GenerateSessionID()
	assert.NotEqual(t, a, b)

	expiry := GetSessionExpiry()
	assert.True(t, expiry.After(time.Now().Add(23*time.Hour)))
	assert.True(t, expiry.Before(time.Now().Add(25*time.Hour)))
}
