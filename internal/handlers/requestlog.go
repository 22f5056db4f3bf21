// This file provides request logging for every endpoint.
package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// statusRecorder wraps an http.ResponseWriter and remembers the status code
// and number of body bytes written, so they can be logged after the handler
// returns. The standard library doesn't expose either value.
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.bytes += n
	return n, err
}

// LogRequests wraps next and writes one log line per request.
//
// Each request gets a random UUID so lines from the same request can be
// grepped together. The ID only goes to the log; the response is left
// untouched so repeated requests still return identical bytes.
func LogRequests(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		reqID := uuid.New()

		// Handlers that never call WriteHeader get an implicit 200.
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		// Method and path come from the client. Quoting them escapes control
		// characters, so a "%0A" in the URL can't start a second log line.
		logger.Printf("request_id=%s method=%q path=%q status=%d bytes=%d duration=%s",
			reqID, r.Method, r.URL.Path, rec.status, rec.bytes, time.Since(start))
	})
}
