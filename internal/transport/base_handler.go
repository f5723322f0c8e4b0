package transport

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/danisworo/workdesk/internal"
	"github.com/danisworo/workdesk/pkg/logger"
)

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errorResp := map[string]interface{}{
		"code":    status,
		"message": message,
	}

	if err := json.NewEncoder(w).Encode(errorResp); err != nil {
		h.Logger.Error("failed to encode error response", "error", err)
	}
}

// WriteAppError translates any error into the taxonomy response. Errors that
// are not *internal.AppError become opaque 500s so repository/store failures
// never leak details to clients.
func (h *BaseHandler) WriteAppError(w http.ResponseWriter, err error) {
	if appErr, ok := internal.IsAppError(err); ok {
		status, body := appErr.ToHTTPResponse()
		if appErr.Cause != nil {
			h.Logger.Error("request failed", "status", status, "code", appErr.Code, "cause", appErr.Cause)
		} else {
			h.Logger.Warn("request failed", "status", status, "code", appErr.Code, "message", appErr.Message)
		}
		h.WriteJSON(w, status, body)
		return
	}
	h.Logger.Error("unexpected error", "error", err)
	h.WriteError(w, http.StatusInternalServerError, "internal server error")
}

// ExtractToken returns the session token from the session_token cookie,
// falling back to an Authorization Bearer header for API clients.
func (h *BaseHandler) ExtractToken(r *http.Request) string {
	if cookie, err := r.Cookie(SessionTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}
	return authHeader[7:]
}
