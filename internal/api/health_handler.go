package api

import (
	"net/http"
)

const healthStatus = "healthy"

// HealthHandler responds to health check requests
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: healthStatus})
}
