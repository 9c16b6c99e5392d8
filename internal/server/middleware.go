package server

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// requestLogger logs one line per request through chi's RequestLogger.
// Health, metrics and static asset requests are skipped.
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	logged := middleware.RequestLogger(&slogFormatter{log: log})
	return func(next http.Handler) http.Handler {
		withLog := logged(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if quiet(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}
			withLog.ServeHTTP(w, r)
		})
	}
}

func quiet(path string) bool {
	return path == "/health" || path == "/metrics" || strings.HasPrefix(path, "/static/")
}

// slogFormatter is a middleware.LogFormatter writing to slog.
type slogFormatter struct {
	log *slog.Logger
}

func (f *slogFormatter) NewLogEntry(r *http.Request) middleware.LogEntry {
	return &slogEntry{
		log: f.log.With(
			slog.String("method", r.Method),
			slog.String("uri", r.RequestURI),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		),
	}
}

type slogEntry struct {
	log *slog.Logger
}

func (e *slogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	attrs := []any{
		slog.Int("status", status),
		slog.Int("bytes", bytes),
		slog.Duration("latency", elapsed),
	}
	if status >= http.StatusInternalServerError {
		e.log.Error("request failed", attrs...)
		return
	}
	e.log.Info("request", attrs...)
}

func (e *slogEntry) Panic(v interface{}, stack []byte) {
	e.log.Error("panic recovered",
		slog.Any("panic", v),
		slog.String("stack", string(stack)),
	)
}
