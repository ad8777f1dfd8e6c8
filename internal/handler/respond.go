package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/jmaurer/placedir/internal/domain"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human-readable message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// writeError maps a service error onto the HTTP status taxonomy and writes
// the JSON error body. Specific sentinels are checked before the
// ErrValidation umbrella they wrap.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not_found", "not found"))
	case errors.Is(err, domain.ErrInvalidVersion):
		writeJSON(w, http.StatusConflict, errorBody("version_conflict", "invalid version"))
	case errors.Is(err, domain.ErrCredentials):
		writeJSON(w, http.StatusUnauthorized, errorBody("invalid_credentials", "invalid credentials"))
	case errors.Is(err, domain.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorBody("forbidden", "forbidden"))
	case errors.Is(err, domain.ErrEmailNotConfirmed):
		writeJSON(w, http.StatusForbidden, errorBody("email_not_confirmed", "email not confirmed"))
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", unwrapMessage(err)))
	default:
		slog.Error("request failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorBody("internal", "internal server error"))
	}
}

// writeRequestError rejects a request before it reaches the service layer
// (malformed body, bad path or query parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorBody("validation_error", message))
}

func errorBody(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.EntryService.Create: validation error: title is
// required" yields "title is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	marker := domain.ErrValidation.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		return msg[i+len(marker):]
	}
	return msg
}
