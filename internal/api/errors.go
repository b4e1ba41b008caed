package api

import (
	"encoding/json"
	"net/http"

	"github.com/creator-tips/internal/types"
)

// ErrorResponse is the wire shape for every error the API returns.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Details interface{} `json:"details,omitempty"`
}

// respondError sends an error response.
func respondError(w http.ResponseWriter, statusCode int, message string, details interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	json.NewEncoder(w).Encode(ErrorResponse{Error: message, Details: details})
}

// respondJSON sends a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// parseJSONBody parses a JSON request body.
func parseJSONBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// mapServiceError maps service errors to HTTP status codes. Storage
// failures surface as the service's generic message; the underlying
// cause stays in the logs.
func mapServiceError(err error) (int, string, interface{}) {
	if serviceErr, ok := err.(*types.ServiceError); ok {
		switch serviceErr.Code {
		case types.ErrCodeValidation:
			var details interface{}
			if serviceErr.Details != nil {
				details = serviceErr.Details["errors"]
			}
			return http.StatusBadRequest, serviceErr.Message, details
		case types.ErrCodeAuth:
			return http.StatusUnauthorized, serviceErr.Message, nil
		case types.ErrCodeNotFound:
			return http.StatusNotFound, serviceErr.Message, nil
		default:
			return http.StatusInternalServerError, serviceErr.Message, nil
		}
	}

	return http.StatusInternalServerError, "Internal server error", nil
}
