// Package response writes the JSON envelopes returned by the API.
//
// Success responses carry the resource itself. Error responses always look like
//
//	{ "status": "error", "error": "field text is required" }
//
// so clients can show the "error" string to the user as is.
package response

import (
	"encoding/json"
	"net/http"

	"lingodeck/internal/validation"
)

// Response is the envelope returned for error cases
type Response struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes data as JSON with the given status code
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// Error wraps a message in the error envelope
func Error(msg string) Response {
	return Response{Status: StatusError, Error: msg}
}

// GeneralError wraps any error in the error envelope
func GeneralError(err error) Response {
	return Error(err.Error())
}

// ValidationError joins every failing field into one message
func ValidationError(err *validation.Error) Response {
	return Error(err.Error())
}
