package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger writes one structured line per finished request.
type RequestLogger struct {
	logger zerolog.Logger
}

func NewRequestLogger(logger zerolog.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Wrap instruments next with access logging.
func (l *RequestLogger) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &accessRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		l.logger.Info().
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("elapsed", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("request served")
	})
}

type accessRecorder struct {
	http.ResponseWriter

	status int
	bytes  int
}

func (r *accessRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *accessRecorder) Write(p []byte) (int, error) {
	n, err := r.ResponseWriter.Write(p)
	r.bytes += n

	return n, err
}
