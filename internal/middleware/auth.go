package middleware

import (
	"net/http"
	"strings"

	"github.com/Debasmita-Giri/blog-api/internal/auth"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// Authenticate resolves the bearer token into a caller identity and
// stores it on the request context. A missing token yields 401; a token
// that fails verification yields 403.
func Authenticate(verifier auth.TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
				return
			}

			identity, err := verifier.Verify(token)
			if err != nil {
				httputil.RespondError(w, http.StatusForbidden, "Invalid or expired token")
				return
			}

			next.ServeHTTP(w, httputil.WithIdentity(r, *identity))
		})
	}
}

// RequireRoles gates a route to callers holding one of the allowed roles.
// Must run after Authenticate.
func RequireRoles(allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, ok := httputil.GetIdentity(r)
			if !ok {
				httputil.RespondError(w, http.StatusUnauthorized, "Access token is required")
				return
			}

			for _, role := range allowed {
				if identity.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}

			httputil.RespondError(w, http.StatusForbidden, "Access denied")
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
