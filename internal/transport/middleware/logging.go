package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveFields are field names that should be filtered from logs
var sensitiveFields = []string{
	"password",
	"password_hash",
	"currentpassword",
	"newpassword",
	"temppassword",
	"token",
	"authorization",
	"secret",
	"cookie",
	"session",
	"credential",
}

func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqID := TraceIDFromContext(r.Context())

			logRequest(logger, r, reqID)

			ww := &responseWriter{
				ResponseWriter: w,
				body:           &bytes.Buffer{},
			}

			next.ServeHTTP(ww, r)

			duration := time.Since(start)
			logResponse(logger, ww, duration, reqID)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status and size
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	rw.body.Write(b)
	return rw.ResponseWriter.Write(b)
}

func logRequest(logger *slog.Logger, r *http.Request, reqID string) {
	var bodyBytes []byte
	if r.Body != nil {
		bodyBytes, _ = io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	logger.Info("incoming request",
		"request_id", reqID,
		"method", r.Method,
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
		"body", filterSensitiveBody(bodyBytes),
	)
}

func logResponse(logger *slog.Logger, rw *responseWriter, duration time.Duration, reqID string) {
	statusCode := rw.statusCode
	if statusCode == 0 {
		statusCode = 200
	}

	logLevel := slog.LevelInfo
	if statusCode >= 400 && statusCode < 500 {
		logLevel = slog.LevelWarn
	} else if statusCode >= 500 {
		logLevel = slog.LevelError
	}

	logger.Log(nil, logLevel, "response",
		"request_id", reqID,
		"status_code", statusCode,
		"duration_ms", duration.Milliseconds(),
		"response_size", rw.body.Len(),
	)
}

// filterSensitiveBody masks sensitive fields in a JSON request body before it
// reaches the logs. Non-JSON bodies with sensitive-looking content are dropped
// entirely.
func filterSensitiveBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var jsonData interface{}
	if err := json.Unmarshal(body, &jsonData); err != nil {
		bodyStr := string(body)
		for _, sensitiveField := range sensitiveFields {
			if strings.Contains(strings.ToLower(bodyStr), sensitiveField) {
				return "[FILTERED - Contains sensitive data]"
			}
		}
		return bodyStr
	}

	filtered := filterSensitiveJSON(jsonData)

	filteredBytes, err := json.Marshal(filtered)
	if err != nil {
		return "[ERROR - Failed to marshal filtered JSON]"
	}

	return string(filteredBytes)
}

func filterSensitiveJSON(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		filtered := make(map[string]interface{})
		for key, value := range v {
			lowerKey := strings.ToLower(key)

			isSensitive := false
			for _, sensitiveField := range sensitiveFields {
				if strings.Contains(lowerKey, sensitiveField) {
					isSensitive = true
					break
				}
			}

			if isSensitive {
				filtered[key] = "[FILTERED]"
			} else {
				filtered[key] = filterSensitiveJSON(value)
			}
		}
		return filtered
	case []interface{}:
		filtered := make([]interface{}, len(v))
		for i, item := range v {
			filtered[i] = filterSensitiveJSON(item)
		}
		return filtered
	default:
		return v
	}
}
