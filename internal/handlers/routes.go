// This file wires the endpoint handlers into a router.
package handlers

import (
	"log"
	"net/http"
)

// NewRouter returns the service's HTTP handler with every route registered
// and each request logged to logger.
//
// In Go 1.22+, ServeMux patterns carry the HTTP method ("GET /health"), and a
// "GET" pattern also matches HEAD requests. The mux then gives us the standard
// fallbacks for free:
//   - an unknown path gets 404 Not Found
//   - a known path with the wrong method gets 405 Method Not Allowed with an
//     Allow header listing the methods that would have worked (OPTIONS
//     included, since no handler answers it)
//   - a path that isn't in clean form ("//health", "/./health", "/a/../b")
//     gets a 301 redirect to the cleaned path
//
// "/{$}" matches only the root path. A bare "/" pattern would act as a
// catch-all and swallow every unknown path.
func NewRouter(logger *log.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", Root)
	mux.HandleFunc("GET /health", HealthCheck)

	return LogRequests(logger, mux)
}
