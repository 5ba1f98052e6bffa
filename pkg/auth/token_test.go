package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/config"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

func testTokenManager(secret string) *TokenManager {
	return NewTokenManager(&config.JWTConfig{
		SecretKey:      secret,
		AccessTokenTTL: 3600,
		Issuer:         "hospital-api-test",
	})
}

func TestIssueAndValidate(t *testing.T) {
	tm := testTokenManager("test-secret-key")

	user := &types.User{
		ID:    "user-1",
		Email: "jane@example.com",
		Role:  types.RolePatient,
	}

	token, err := tm.Issue(user)
	assert.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int64(3600), token.ExpiresIn)

	claims, err := tm.Validate(token.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, types.RolePatient, claims.Role)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := testTokenManager("secret-a")
	verifier := testTokenManager("secret-b")

	token, err := issuer.Issue(&types.User{ID: "user-1", Role: types.RoleAdmin})
	assert.NoError(t, err)

	claims, err := verifier.Validate(token.AccessToken)
	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestValidate_Garbage(t *testing.T) {
	tm := testTokenManager("test-secret-key")

	claims, err := tm.Validate("not.a.token")
	assert.Nil(t, claims)
	assert.Error(t, err)
}
