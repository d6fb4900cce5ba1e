package httpx

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type ErrorResponse struct {
	Error ErrorResponseBody `json:"error"`
	Meta  map[string]any    `json:"meta,omitempty"`
}

type ErrorResponseBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// JSON writes v as the bare response body.
func JSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("encode response", "error", err)
	}
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func JSONError(w http.ResponseWriter, r *http.Request, statusCode int, code string, message string) {
	var meta map[string]any
	if requestID := RequestIDFrom(r); requestID != "" {
		meta = map[string]any{"request_id": requestID}
	}
	JSON(w, statusCode, ErrorResponse{
		Error: ErrorResponseBody{Code: code, Message: message},
		Meta:  meta,
	})
}
