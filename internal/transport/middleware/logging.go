package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// sensitiveParams are query keys whose values must never reach the logs.
var sensitiveParams = []string{
	"password",
	"token",
	"access_token",
	"refresh_token",
	"secret",
}

// Logging logs one line per request with method, path, status and duration.
// Request bodies are never logged; they routinely contain credentials.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(ww, r)

			logger.Info("http request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", redactQuery(r.URL.RawQuery),
				"status", ww.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote", r.RemoteAddr)
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func redactQuery(raw string) string {
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "&")
	for i, part := range parts {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			continue
		}
		key := strings.ToLower(kv[0])
		for _, sensitive := range sensitiveParams {
			if strings.Contains(key, sensitive) {
				parts[i] = kv[0] + "=[REDACTED]"
				break
			}
		}
	}
	return strings.Join(parts, "&")
}
