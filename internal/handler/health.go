package handler

import (
	"net/http"
	"time"

	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// HealthCheck is a simple liveness endpoint
// GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, "ok", map[string]any{
		"time": time.Now(),
	})
}
