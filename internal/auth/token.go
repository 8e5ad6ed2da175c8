package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// TokenTTL is the fixed lifetime of issued access tokens.
const TokenTTL = time.Hour

// JWTAuthority issues and verifies HS256 access tokens signed with a
// shared secret. It implements both TokenIssuer and TokenVerifier.
type JWTAuthority struct {
	secret []byte
}

// NewJWTAuthority creates a token authority from the signing secret.
func NewJWTAuthority(secret string) (*JWTAuthority, error) {
	if secret == "" {
		return nil, errors.New("JWT secret cannot be empty")
	}
	return &JWTAuthority{secret: []byte(secret)}, nil
}

// Issue signs a token embedding {user_id, username, role} with the fixed
// one hour expiry.
func (a *JWTAuthority) Issue(identity models.Identity) (string, error) {
	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		UserID:   identity.UserID,
		Username: identity.Username,
		Role:     identity.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// Verify validates a locally issued token and extracts the identity.
func (a *JWTAuthority) Verify(tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, func(t *jwt.Token) (any, error) {
		// Pin the algorithm to prevent confusion attacks.
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return a.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok || claims.UserID == "" {
		return nil, domain.ErrUnauthorized
	}

	return &models.Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		Role:     claims.Role,
	}, nil
}
