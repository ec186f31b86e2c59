package api

import (
	"encoding/json"
	"log"
	"net/http"
)

// MessageResponse is the body returned by the root endpoint
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the body returned by the health endpoint
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body returned for unmatched routes
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON sets the JSON content type, writes the status code and encodes payload.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("ERROR: failed to encode response: %v", err)
	}
}
