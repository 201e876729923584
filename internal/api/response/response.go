// Package response writes the API's JSON responses. Handlers and middleware
// share these helpers so every endpoint returns the same envelope shape.
package response

import (
	"encoding/json"
	"log"
	"net/http"
)

// ErrorResponse is the error envelope every failing endpoint returns.
// Details carries optional context, such as per-field validation messages.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// RespondJSON writes data as a JSON body with the given status. A nil data
// writes the status alone, which is how 204 responses are sent. The status
// line is already on the wire when encoding runs, so an encode failure can
// only be logged.
func RespondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("Failed to encode JSON response: %v", err)
		}
	}
}

// RespondError writes an ErrorResponse with the given status. Pass an empty
// details value when the message stands on its own.
func RespondError(w http.ResponseWriter, status int, message string, details interface{}) {
	RespondJSON(w, status, ErrorResponse{Error: message, Details: details})
}
