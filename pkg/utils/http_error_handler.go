package utils

import (
	"encoding/json"
	"net/http"

	"tripmate/pkg/apperr"
)

type errorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func WriteError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{
		Status:  "error",
		Message: message,
	})
}

// WriteErr renders a service error with the status derived from its kind.
// Internal errors get a generic message so nothing sensitive leaks.
func WriteErr(w http.ResponseWriter, err error) {
	status := apperr.Status(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}
	WriteError(w, message, status)
}
