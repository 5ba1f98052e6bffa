package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Lah112/Hospital-Management-System-Final/pkg/config"
	"github.com/Lah112/Hospital-Management-System-Final/pkg/types"
)

// JWTClaims is the token payload carried between login and the middleware.
type JWTClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates JWT access tokens
type TokenManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenManager creates a new token manager from the JWT configuration
func NewTokenManager(cfg *config.JWTConfig) *TokenManager {
	return &TokenManager{
		secret: []byte(cfg.SecretKey),
		ttl:    time.Duration(cfg.AccessTokenTTL) * time.Second,
		issuer: cfg.Issuer,
	}
}

// Issue generates a signed access token for the given user
func (tm *TokenManager) Issue(user *types.User) (*types.AuthToken, error) {
	now := time.Now()

	claims := &JWTClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tm.issuer,
			Subject:   user.ID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &types.AuthToken{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int64(tm.ttl.Seconds()),
		IssuedAt:    now,
	}, nil
}

// Validate parses a token string and returns the user claims
func (tm *TokenManager) Validate(tokenString string) (*types.UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &types.UserClaims{
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   types.UserRole(claims.Role),
	}, nil
}
