package middleware

import (
	"context"
	"net/http"

	"github.com/danisworo/workdesk/pkg/logger"

	"github.com/google/uuid"
)

type contextKey string

const traceIDKey contextKey = "traceID"

// RequestID tags the request with a trace id, honoring one supplied by the
// caller in X-Trace-ID.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := context.WithValue(r.Context(), traceIDKey, traceID)
		ctx = logger.With(ctx, "traceID", traceID)

		// propagate back to the caller
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func TraceIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(traceIDKey).(string); ok {
		return id
	}
	return ""
}
