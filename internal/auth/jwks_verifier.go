package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

// JWKSVerifier validates tokens issued by an external identity provider
// against its published JWKS. Keys are cached and refreshed by keyfunc
// based on HTTP cache headers.
type JWKSVerifier struct {
	jwks   keyfunc.Keyfunc
	logger *slog.Logger
}

// NewJWKSVerifier creates a verifier backed by the given JWKS endpoint.
func NewJWKSVerifier(jwksURL string, logger *slog.Logger) (*JWKSVerifier, error) {
	if jwksURL == "" {
		return nil, errors.New("JWKS URL cannot be empty")
	}

	jwks, err := keyfunc.NewDefaultCtx(context.Background(), []string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("create JWKS client: %w", err)
	}

	logger.Info("JWKS verifier initialized", "jwks_url", jwksURL)

	return &JWKSVerifier{jwks: jwks, logger: logger}, nil
}

// Verify validates an externally issued token. Externally issued tokens
// carry no local role claim unless the provider sets one; absent or
// unrecognized roles resolve to "user".
func (v *JWKSVerifier) Verify(tokenString string) (*models.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Claims{}, v.jwks.Keyfunc)
	if err != nil || !token.Valid {
		return nil, domain.ErrUnauthorized
	}

	// Asymmetric algorithms only; HS256 tokens belong to the local authority.
	switch token.Method.Alg() {
	case "RS256", "ES256":
	default:
		v.logger.Warn("token uses unexpected algorithm", "algorithm", token.Method.Alg())
		return nil, domain.ErrUnauthorized
	}

	claims, ok := token.Claims.(*models.Claims)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}

	role := claims.Role
	if !models.IsValidRole(role) {
		role = models.RoleUser
	}

	return &models.Identity{
		UserID:   userID,
		Username: claims.Username,
		Role:     role,
	}, nil
}

// ChainVerifier tries each verifier in order and returns the first
// successful identity.
type ChainVerifier []TokenVerifier

func (c ChainVerifier) Verify(tokenString string) (*models.Identity, error) {
	for _, v := range c {
		if identity, err := v.Verify(tokenString); err == nil {
			return identity, nil
		}
	}
	return nil, domain.ErrUnauthorized
}
