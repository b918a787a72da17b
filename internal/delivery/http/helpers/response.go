package helpers

import (
	"encoding/json"
	"net/http"
)

// GenericErrorMessage is returned for unexpected failures so internal error
// details never reach the caller.
const GenericErrorMessage = "An unexpected error occurred."

// DataResponse is the success envelope: a human-readable message plus the
// payload.
// swagger:model DataResponse
type DataResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// MessageResponse carries a message with no payload (e.g. 404 bodies).
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a client-facing error string.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success body {"message": ..., "data": ...}.
func WriteData(w http.ResponseWriter, statusCode int, message string, data any) {
	writeJSON(w, statusCode, DataResponse{Message: message, Data: data})
}

// WriteMessage writes {"message": ...}.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteError writes {"error": ...}.
func WriteError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorResponse{Error: message})
}
