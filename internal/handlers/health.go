// This file contains the two endpoint handlers:
//   - GET /       — Returns the greeting
//   - GET /health — Returns a liveness/readiness response
package handlers

import (
	"net/http"

	"github.com/dlfelps/hello-go-claude/internal/models"
)

// Root handles GET / and returns the greeting text.
func Root(w http.ResponseWriter, r *http.Request) {
	writeText(w, models.RootResponse)
}

// HealthCheck handles GET /health — a simple endpoint that confirms the
// process is up and serving. Kubernetes (or any other orchestrator) calls it
// to decide whether to route traffic to the pod or restart it.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeText(w, models.HealthResponse)
}
