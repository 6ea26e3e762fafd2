package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glossarygateway/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInit(t *testing.T) {
	original := Logger
	t.Cleanup(func() { Logger = original })

	t.Run("valid level", func(t *testing.T) {
		require.NoError(t, Init("debug"))
		assert.True(t, Logger.Core().Enabled(zap.DebugLevel))
	})

	t.Run("warn level hides info", func(t *testing.T) {
		require.NoError(t, Init("warn"))
		assert.False(t, Logger.Core().Enabled(zap.InfoLevel))
		assert.True(t, Logger.Core().Enabled(zap.WarnLevel))
	})

	t.Run("invalid level", func(t *testing.T) {
		assert.Error(t, Init("loud"))
	})
}

func TestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	handler := middleware.RequestIDMiddleware(
		LoggerMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})),
	)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/glossary/status?x=1", nil)
	req.Header.Set("X-Request-ID", "req-1")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, "HTTP request", entry.Message)
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/api/v1/glossary/status", fields["path"])
	assert.Equal(t, "x=1", fields["query"])
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Empty(t, fields["route"])
}

func TestLoggerMiddleware_RoutePattern(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	r := chi.NewRouter()
	r.Use(LoggerMiddleware(zap.New(core)))
	r.Put("/api/v1/glossary/entries/{aggregateIdentifier}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true}`))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPut, "/api/v1/glossary/entries/abc-123", nil))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	fields := entry.ContextMap()
	assert.Equal(t, zapcore.InfoLevel, entry.Level)
	assert.Equal(t, "/api/v1/glossary/entries/abc-123", fields["path"])
	assert.Equal(t, "/api/v1/glossary/entries/{aggregateIdentifier}", fields["route"])
	assert.Equal(t, int64(http.StatusOK), fields["status"])
	assert.Equal(t, int64(len(`{"success":true}`)), fields["bytes"])
}

func TestLoggerMiddleware_Levels(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		expectedLevel zapcore.Level
	}{
		{name: "success", status: http.StatusCreated, expectedLevel: zapcore.InfoLevel},
		{name: "client error", status: http.StatusNotFound, expectedLevel: zapcore.WarnLevel},
		{name: "server error", status: http.StatusBadGateway, expectedLevel: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.DebugLevel)
			handler := LoggerMiddleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.expectedLevel, logs.All()[0].Level)
			assert.Equal(t, int64(tt.status), logs.All()[0].ContextMap()["status"])
		})
	}
}
