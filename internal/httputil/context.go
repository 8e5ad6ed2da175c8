package httputil

import (
	"context"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain/models"
)

type contextKey string

const identityKey contextKey = "identity"

// WithIdentity attaches the resolved caller identity to the request.
func WithIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), identityKey, identity)
	return r.WithContext(ctx)
}

// GetIdentity retrieves the caller identity set by the auth middleware.
// The second return is false on unauthenticated requests.
func GetIdentity(r *http.Request) (models.Identity, bool) {
	identity, ok := r.Context().Value(identityKey).(models.Identity)
	return identity, ok
}
