package httpx

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Required for responses carrying tokens or account data.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// APIError is the single error shape every failure is converted into at the
// handler boundary: an HTTP status plus a JSON body with one "error" field.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// Write sends the error as a JSON response.
func (e *APIError) Write(w http.ResponseWriter) {
	WriteJSON(w, e.StatusCode, map[string]string{"error": e.Message})
}

// WriteError is shorthand for an ad-hoc APIError.
func WriteError(w http.ResponseWriter, code int, msg string) {
	(&APIError{StatusCode: code, Message: msg}).Write(w)
}
