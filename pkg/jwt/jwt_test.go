package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.Generate("user-id-123", "mluukkai")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-id-123", claims.UserID)
	assert.Equal(t, "mluukkai", claims.Username)
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).Generate("id", "name")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewManager("test-secret", -time.Minute)

	token, err := m.Generate("id", "name")
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.Error(t, err)
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Validate("not-a-token")
	assert.Error(t, err)
}
