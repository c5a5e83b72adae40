package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

// maxJSONBody bounds JSON request bodies on top of the service text limits.
const maxJSONBody = 1 << 20

// errorResponse is the body of every error reply.
type errorResponse struct {
	Error  string       `json:"error"`
	Action string       `json:"action,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message, action string) {
	writeJSON(w, status, errorResponse{Error: message, Action: action})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(dst); err != nil {
		var tooBig *http.MaxBytesError
		if errors.As(err, &tooBig) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "send less text at once")
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid request body", "send a JSON object")
		return false
	}
	return true
}

// readText returns the request text: the raw body for text/plain requests,
// otherwise the "text" field of a JSON object.
func readText(w http.ResponseWriter, r *http.Request) (string, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
		if err != nil {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large", "send less text at once")
			return "", false
		}
		return string(b), true
	}
	var req textRequest
	if !decodeJSON(w, r, &req) {
		return "", false
	}
	return req.Text, true
}
