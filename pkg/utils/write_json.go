package utils

import (
	"encoding/json"
	"net/http"
)

// WriteJSON renders data as a 200 JSON response.
func WriteJSON(w http.ResponseWriter, data interface{}) {
	WriteJSONStatus(w, http.StatusOK, data)
}

// WriteJSONStatus is the variant for handlers that create resources and
// need a status other than 200.
func WriteJSONStatus(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	// The status line is already on the wire, all we can do is log.
	if err := json.NewEncoder(w).Encode(data); err != nil {
		Logger.Errorf("failed to encode JSON response: %v", err)
	}
}
