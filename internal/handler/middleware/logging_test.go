//go:build unit

package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tourism-api/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	engine := gin.New()
	engine.Use(middleware.LoggingMiddleware(logger))
	engine.GET("/tours/:id", func(c *gin.Context) {
		c.String(http.StatusConflict, middleware.GetRequestID(c))
	})

	t.Run("upstream id is kept", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/tours/1", nil)
		req.Header.Set("X-Request-ID", "gw-42")
		req.Header.Set("X-User-ID", "u-7")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, "gw-42", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "gw-42", w.Body.String())
		assert.Contains(t, buf.String(), `"route":"/tours/:id"`)
		assert.Contains(t, buf.String(), `"user_id":"u-7"`)
		assert.Contains(t, buf.String(), `"level":"INFO"`)
	})

	t.Run("id is generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tours/1", nil))

		_, err := uuid.Parse(w.Header().Get("X-Request-ID"))
		require.NoError(t, err)
	})
}
