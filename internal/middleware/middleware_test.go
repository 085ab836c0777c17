package middleware_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bankwise/bank_account_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"
)

func TestStructuredLoggingMiddleware_InjectsRequestScopedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))

	var seen *slog.Logger
	r.GET("/ping", func(c *gin.Context) {
		seen = middleware.GetLoggerFromCtx(c.Request.Context())
		c.String(http.StatusOK, "pong")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	require.NotNil(t, seen)
	assert.NotSame(t, slog.Default(), seen)
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	logger := middleware.GetLoggerFromCtx(context.Background())
	assert.Same(t, slog.Default(), logger)
}

func TestRateLimit_RejectsOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rate, err := limiter.NewRateFromFormatted("2-H")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
