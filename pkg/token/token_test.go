package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	gen := NewJwtTokenGenerator("test-secret", "hrms", "hrms-admin")

	tokenStr, expiresAt, err := gen.GenerateToken("admin", time.Hour, map[string]interface{}{
		"roles": []string{"hr_admin"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	parsed, err := gen.ParseToken(tokenStr)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	subject, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, "admin", subject)
}

func TestParseTokenWrongSecret(t *testing.T) {
	gen := NewJwtTokenGenerator("test-secret", "hrms", "hrms-admin")
	other := NewJwtTokenGenerator("other-secret", "hrms", "hrms-admin")

	tokenStr, _, err := gen.GenerateToken("admin", time.Hour, nil)
	require.NoError(t, err)

	_, err = other.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("s3cret", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
