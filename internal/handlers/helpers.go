// Package handlers contains the HTTP handler functions for the hello-go-claude
// service, plus the router that maps paths to them.
//
// This file provides shared helper functions used across all handlers.
// In Go's net/http package, a handler is any function with the signature:
//
//	func(w http.ResponseWriter, r *http.Request)
//
// The ResponseWriter is where we write our response, and the Request contains
// all the information about the incoming HTTP request.
package handlers

import (
	"io"
	"net/http"

	"github.com/dlfelps/hello-go-claude/internal/models"
)

// writeText writes a canned response as plain text.
//
// Headers must be set before WriteHeader is called, because WriteHeader sends
// them to the client immediately.
func writeText(w http.ResponseWriter, resp models.CannedResponse) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(resp.Status)

	// A write error here means the client went away. The status line is
	// already on the wire, so there is nothing useful left to do with it.
	_, _ = io.WriteString(w, resp.Body)
}
