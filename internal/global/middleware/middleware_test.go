package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"camp-activity-system/internal/global/logger"
	"camp-activity-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestIDGeneratedAndEchoed(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	var seen string
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString(logger.RequestIDKey)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, seen)
	require.Equal(t, seen, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, "abc-123", seen)
	require.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func logRequest(t *testing.T, h gin.HandlerFunc) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestID(), Logger(slog.New(slog.NewJSONHandler(&buf, nil))))
	r.GET("/campers/:id", h)
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/campers/7", nil))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line), buf.String())
	return line
}

func TestLoggerRecordsRequest(t *testing.T) {
	line := logRequest(t, func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"name": "Caitlin"}) })

	require.Equal(t, "INFO", line["level"])
	require.Equal(t, "/campers/:id", line["route"])
	require.Equal(t, "/campers/7", line["path"])
	require.EqualValues(t, http.StatusOK, line["status"])
	require.NotEmpty(t, line["request_id"])
	require.NotContains(t, line, "error")
	require.NotContains(t, line, "response_body")
}

func TestLoggerRecordsFailure(t *testing.T) {
	line := logRequest(t, func(c *gin.Context) { response.Fail(c, response.ErrCamperNotFound) })
	require.Equal(t, "WARN", line["level"])
	require.Equal(t, "Camper not found", line["error"])
	require.NotContains(t, line, "cause")

	line = logRequest(t, func(c *gin.Context) {
		response.Fail(c, response.ErrServerInternal.WithOrigin(errors.New("database is locked")))
	})
	require.Equal(t, "ERROR", line["level"])
	require.Equal(t, "internal server error", line["error"])
	require.Equal(t, "database is locked", line["cause"])
}

func TestCorsPreflight(t *testing.T) {
	r := gin.New()
	r.Use(Cors([]string{"http://localhost:3000"}))
	r.PATCH("/campers/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	req := httptest.NewRequest(http.MethodOptions, "/campers/1", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

func TestCorsRejectsUnknownOrigin(t *testing.T) {
	r := gin.New()
	r.Use(Cors([]string{"http://localhost:3000"}))
	r.GET("/campers", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/campers", nil)
	req.Header.Set("Origin", "http://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusForbidden, w.Code)
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCorsAllowsAnyOriginWhenUnconfigured(t *testing.T) {
	r := gin.New()
	r.Use(Cors(nil))
	r.GET("/campers", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/campers", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "Content-Disposition")
}

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	r := gin.New()
	r.Use(Metrics())
	r.GET("/campers/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(requestsTotal.WithLabelValues("/campers/:id", http.MethodGet, "200"))
	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/campers/"+id, nil))
	}
	after := testutil.ToFloat64(requestsTotal.WithLabelValues("/campers/:id", http.MethodGet, "200"))
	require.Equal(t, before+3, after)
}

func TestRecoveryMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(Recovery())
	r.GET("/", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "internal server error")
}
