package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestRequestLoggerRecordsStatusAndBytes(t *testing.T) {
	var buf bytes.Buffer
	rl := NewRequestLogger(zerolog.New(&buf))

	handler := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"mov-1"}`)) //nolint:errcheck
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movements", nil))

	line := buf.String()
	for _, want := range []string{`"status":201`, `"bytes":14`, `"path":"/api/v1/movements"`, "request served"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected log line to contain %s, got %s", want, line)
		}
	}
}

func TestRequestLoggerDefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	rl := NewRequestLogger(zerolog.New(&buf))

	handler := rl.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if !strings.Contains(buf.String(), `"status":200`) {
		t.Fatalf("expected implicit 200, got %s", buf.String())
	}
}
