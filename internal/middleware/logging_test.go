package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoggingMiddleware(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	middleware := LoggingMiddleware(zap.New(core))

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusAccepted)
		if _, err := w.Write([]byte("test response")); err != nil {
			t.Logf("Ошибка при записи в response: %v", err)
		}
	})

	req := httptest.NewRequest(http.MethodPost, "/api/links", nil)
	w := httptest.NewRecorder()

	middleware(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Equal(t, "test response", w.Body.String())

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "POST", fields["method"])
	assert.Equal(t, "/api/links", fields["uri"])
	assert.EqualValues(t, http.StatusAccepted, fields["status"])
	assert.EqualValues(t, len("test response"), fields["size"])
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	chain := chimiddleware.RequestID(LoggingMiddleware(zap.New(core))(okHandler(t)))

	req := httptest.NewRequest(http.MethodGet, "/api/state", nil)
	w := httptest.NewRecorder()
	chain.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	assert.NotEmpty(t, logs.All()[0].ContextMap()["req_id"])
}

func TestLoggingMiddleware_DifferentStatusCodes(t *testing.T) {
	statusCodes := []int{200, 202, 400, 409, 500}

	for _, statusCode := range statusCodes {
		t.Run("Status"+strconv.Itoa(statusCode), func(t *testing.T) {
			core, logs := observer.New(zapcore.InfoLevel)
			middleware := LoggingMiddleware(zap.New(core))
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(statusCode)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			w := httptest.NewRecorder()
			middleware(handler).ServeHTTP(w, req)

			assert.Equal(t, statusCode, w.Code)
			require.Equal(t, 1, logs.Len())
			if statusCode >= 500 {
				assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
			} else {
				assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
			}
		})
	}
}

func TestLoggingResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	lw := &loggingResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

	n, err := lw.Write([]byte("test data"))
	assert.NoError(t, err)
	assert.Equal(t, 9, n)

	_, err = lw.Write([]byte(" more"))
	assert.NoError(t, err)
	assert.Equal(t, 14, lw.size)
	assert.Equal(t, "test data more", w.Body.String())
}
