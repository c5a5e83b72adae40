package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody matches the error shape of the REST handlers.
type errorBody struct {
	Error  string `json:"error"`
	Action string `json:"action,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message, action string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorBody{Error: message, Action: action}) //nolint:errcheck
}
