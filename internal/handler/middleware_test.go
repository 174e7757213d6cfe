package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"members-admin-service/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_LevelByStatus(t *testing.T) {
	testCases := []struct {
		name    string
		status  int
		handler echo.HandlerFunc
		level   logrus.Level
		message string
	}{
		{"Success", http.StatusOK, func(c echo.Context) error { return c.NoContent(http.StatusOK) }, logrus.InfoLevel, "Request processed"},
		{"Client error", http.StatusNotFound, func(c echo.Context) error { return c.NoContent(http.StatusNotFound) }, logrus.WarnLevel, "Client error"},
		{"Handler error", http.StatusBadRequest, func(c echo.Context) error { return echo.NewHTTPError(http.StatusBadRequest, "bad") }, logrus.WarnLevel, "Client error"},
		{"Server error", http.StatusInternalServerError, func(c echo.Context) error { return c.NoContent(http.StatusInternalServerError) }, logrus.ErrorLevel, "Server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, hook := test.NewNullLogger()

			e := echo.New()
			e.Use(handler.LoggingMiddleware(logger))
			e.GET("/sessions/:sessionId", tc.handler)

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/s-1", nil))

			assert.Equal(t, tc.status, rec.Code)
			entry := hook.LastEntry()
			require.NotNil(t, entry)
			assert.Equal(t, tc.level, entry.Level)
			assert.Equal(t, tc.message, entry.Message)
			assert.Equal(t, tc.status, entry.Data["status"])
			assert.Equal(t, "s-1", entry.Data["session_id"])
			assert.Equal(t, "/sessions/:sessionId", entry.Data["route"])
		})
	}
}
