//go:build unit

package middleware_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"strings"
	"testing"

	"lucky-draw/internal/handler/middleware"
	"lucky-draw/internal/pkg/config"
	"lucky-draw/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(t *testing.T) (*gin.Engine, *string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := middleware.NewLogger(config.LogConfig{Level: "error", TimeFormat: "15:04:05"})
	seen := new(string)

	r := gin.New()
	r.Use(logger.LoggingMiddleware())
	r.GET("/ping", func(c *gin.Context) {
		*seen = middleware.GetRequestID(c)
		c.Status(http.StatusNoContent)
	})
	return r, seen
}

func TestLoggingMiddleware_RequestID(t *testing.T) {
	testCases := []struct {
		name     string
		header   string
		expectID func(t *testing.T, id string)
	}{
		{
			name:   "caller supplied id is kept",
			header: "req-42",
			expectID: func(t *testing.T, id string) {
				assert.Equal(t, "req-42", id)
			},
		},
		{
			name:   "missing id is generated",
			header: "",
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
		{
			name:   "oversized id is replaced",
			header: strings.Repeat("x", 129),
			expectID: func(t *testing.T, id string) {
				_, err := uuid.Parse(id)
				assert.NoError(t, err)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, seen := newLoggedRouter(t)

			req := nethttptest.NewRequest(http.MethodGet, "/ping", nil)
			if tc.header != "" {
				req.Header.Set(middleware.HeaderRequestID, tc.header)
			}
			w := nethttptest.NewRecorder()
			r.ServeHTTP(w, req)

			require.Equal(t, http.StatusNoContent, w.Code)
			tc.expectID(t, *seen)
			assert.Equal(t, *seen, w.Header().Get(middleware.HeaderRequestID))
		})
	}
}

func TestGetRequestID_Unset(t *testing.T) {
	c, _ := gin.CreateTestContext(nethttptest.NewRecorder())
	assert.Empty(t, middleware.GetRequestID(c))
}

func TestLoggingMiddleware_StackOnServerError(t *testing.T) {
	testCases := []struct {
		name        string
		status      int
		expectStack bool
	}{
		{name: "5xx logs stack lines", status: http.StatusInternalServerError, expectStack: true},
		{name: "4xx logs no stack", status: http.StatusBadRequest, expectStack: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			var buf bytes.Buffer
			logger := middleware.NewLoggerTo(&buf, config.LogConfig{Level: "info", TimeFormat: "15:04:05"})

			r := gin.New()
			r.Use(logger.LoggingMiddleware())
			r.GET("/fail", func(c *gin.Context) {
				_ = c.Error(errs.New("store down"))
				c.Status(tc.status)
			})

			w := nethttptest.NewRecorder()
			r.ServeHTTP(w, nethttptest.NewRequest(http.MethodGet, "/fail", nil))

			require.Equal(t, tc.status, w.Code)
			out := buf.String()
			assert.Contains(t, out, "Request completed")
			assert.Contains(t, out, "store down")
			if tc.expectStack {
				assert.Contains(t, out, "stack=")
			} else {
				assert.NotContains(t, out, "stack=")
			}
		})
	}
}

func TestCustomRecovery_LogsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := middleware.NewLoggerTo(&buf, config.LogConfig{Level: "info", TimeFormat: "15:04:05"})

	r := gin.New()
	r.Use(middleware.CustomRecovery(), logger.LoggingMiddleware())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	req := nethttptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(middleware.HeaderRequestID, "req-panic-1")
	w := nethttptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "recovered from panic")
	assert.Contains(t, buf.String(), "request_id=req-panic-1")
}
