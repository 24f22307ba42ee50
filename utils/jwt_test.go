package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndValidateTokens(t *testing.T) {
	tokens, err := GenerateTokens("amina", "admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
	assert.NotEqual(t, tokens.AccessToken, tokens.RefreshToken)

	claims, err := ValidateToken(tokens.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "amina", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestSigningKeyStableWithinProcess(t *testing.T) {
	// Without JWT_SECRET the fallback key is random but generated once,
	// so tokens from separate calls validate against each other.
	first, err := GenerateTokens("amina", "staff")
	assert.NoError(t, err)
	second, err := GenerateTokens("amina", "staff")
	assert.NoError(t, err)

	_, err = ValidateToken(first.AccessToken)
	assert.NoError(t, err)
	_, err = ValidateToken(second.AccessToken)
	assert.NoError(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	tokens, err := GenerateTokens("amina", "staff")
	assert.NoError(t, err)

	tampered := tokens.AccessToken[:len(tokens.AccessToken)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}
