package resp

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Envelope is the response body shape shared by every endpoint.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Image   any    `json:"image,omitempty"`
	Images  any    `json:"images,omitempty"`
}

func WriteOK(w http.ResponseWriter, env Envelope) {
	writeResp(w, http.StatusOK, env)
}

func WriteBadRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusBadRequest, message)
}

func WriteNotFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, message)
}

func WriteUnsupportedMediaType(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnsupportedMediaType, message)
}

func WriteInternalServerError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusInternalServerError, message)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeResp(w, status, Envelope{
		Success: false,
		Message: message,
	})
}

func writeResp(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		http.Error(w, fmt.Sprintf("Failed to write standard HTTP response: %v", err), http.StatusInternalServerError)
	}
}
