package httputil

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: a human-readable message plus
// the optional payload.
type Envelope struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// RespondJSON writes an enveloped success response. It marshals before
// writing headers so an encoding failure never produces a partial body.
func RespondJSON(w http.ResponseWriter, status int, message string, data any) {
	payload, err := json.Marshal(Envelope{Message: message, Data: data})
	if err != nil {
		RespondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondError writes an enveloped error body with the given status.
// Only the status code and message ever cross the boundary.
func RespondError(w http.ResponseWriter, status int, message string) {
	payload, err := json.Marshal(Envelope{Message: message})
	if err != nil {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("internal server error"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// RespondNoContent writes a bodiless 204 response.
func RespondNoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
