package handler

import (
	"errors"
	"net/http"

	"github.com/Debasmita-Giri/blog-api/internal/domain"
	"github.com/Debasmita-Giri/blog-api/internal/httputil"
)

// handleError normalizes every failure into {status, message}. Domain
// errors carry their own status and message; anything unclassified
// becomes a 500 with the per-operation fallback so no raw store error
// ever crosses the boundary.
func handleError(w http.ResponseWriter, err error, fallback string) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	httputil.RespondError(w, http.StatusInternalServerError, fallback)
}
