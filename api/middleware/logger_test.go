package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prasetyowira/qrbadge/constant"
	appLogger "github.com/prasetyowira/qrbadge/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLogger_SetsRequestID(t *testing.T) {
	// Arrange
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = appLogger.RequestID(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	// Act
	RequestLogger()(next).ServeHTTP(w, req)

	// Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, w.Header().Get(constant.HeaderRequestID))
}

func TestRequestLogger_ReusesChiRequestID(t *testing.T) {
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = appLogger.RequestID(r.Context())
	})
	handler := chimiddleware.RequestID(RequestLogger()(next))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(constant.HeaderRequestID, "from-client")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	assert.Equal(t, "from-client", seen)
	assert.Equal(t, "from-client", w.Header().Get(constant.HeaderRequestID))
}

func TestRequestLogger_LogsCompletionLevel(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusBadRequest, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		core, logs := observer.New(zapcore.DebugLevel)
		appLogger.Use(zap.New(core))

		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			w.Write([]byte("body"))
		})
		req := httptest.NewRequest(http.MethodPost, "/generate", nil)
		RequestLogger()(next).ServeHTTP(httptest.NewRecorder(), req)

		completed := logs.FilterMessage(constant.MsgRequestCompleted).All()
		require.Len(t, completed, 1)
		assert.Equal(t, tt.level, completed[0].Level)
		fields := completed[0].ContextMap()
		assert.EqualValues(t, tt.status, fields[constant.DataStatus])
		assert.EqualValues(t, 4, fields[constant.DataSize])
	}
	appLogger.Use(nil)
}
