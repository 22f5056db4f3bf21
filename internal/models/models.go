// Package models defines the fixed responses served by the hello-go-claude
// service. There is no database and no mutable state: the whole "data model"
// is two status/body pairs created at program start.
//
// Go doesn't have a way to declare a struct value as a true constant (`const`
// only works for basic types like strings and numbers). The usual workaround
// is a package-level `var` that the rest of the code simply never writes to.
package models

import "net/http"

// CannedResponse is a precomputed HTTP response: the same status code and
// body are returned regardless of what the request contains.
type CannedResponse struct {
	Status int
	Body   string
}

// ---------------------------------------------------------------------------
// Process-wide responses
// ---------------------------------------------------------------------------

var (
	// RootResponse is the greeting served on GET /.
	RootResponse = CannedResponse{Status: http.StatusOK, Body: "Hello, World! 1234567"}

	// HealthResponse is served on GET /health. Container orchestrators hit this
	// endpoint for liveness and readiness probes, so it must stay cheap and
	// must never depend on anything outside the process.
	HealthResponse = CannedResponse{Status: http.StatusOK, Body: "OK"}
)
