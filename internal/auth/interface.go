package auth

import "github.com/Debasmita-Giri/blog-api/internal/domain/models"

// TokenIssuer signs access tokens embedding the caller identity.
type TokenIssuer interface {
	// Issue returns a signed token for the given identity.
	Issue(identity models.Identity) (string, error)
}

// TokenVerifier resolves a caller identity from a presented token.
// Implementations return domain.ErrUnauthorized for any invalid, expired,
// or mis-signed credential.
type TokenVerifier interface {
	Verify(tokenString string) (*models.Identity, error)
}
