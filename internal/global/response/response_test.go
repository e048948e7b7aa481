package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"camp-activity-system/config"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, cfg *config.Config, h gin.HandlerFunc) (*httptest.ResponseRecorder, ResponseBody) {
	t.Helper()
	config.Set(cfg)
	t.Cleanup(func() { config.Set(nil) })

	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		defer Recovery(c)
		h(c)
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body ResponseBody
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestFailNotFound(t *testing.T) {
	w, _ := serve(t, nil, func(c *gin.Context) {
		Fail(c, ErrCamperNotFound)
	})
	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"error":"Camper not found"}`, w.Body.String())
}

func TestFailValidationUsesErrorList(t *testing.T) {
	w, body := serve(t, nil, func(c *gin.Context) {
		Fail(c, ErrValidation.WithOrigin(pkgerrors.New("age out of range")))
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"errors":["validation errors"]}`, w.Body.String())
	require.Empty(t, body.Origin)
}

func TestFailOmitsOriginInDebugModeByDefault(t *testing.T) {
	w, _ := serve(t, &config.Config{Mode: config.ModeDebug}, func(c *gin.Context) {
		Fail(c, ErrServerInternal.WithOrigin(pkgerrors.New("connection refused")))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.JSONEq(t, `{"error":"internal server error"}`, w.Body.String())
}

func TestFailExposesOriginWhenEnabled(t *testing.T) {
	w, body := serve(t, &config.Config{Mode: config.ModeDebug, ExposeErrorOrigin: true}, func(c *gin.Context) {
		Fail(c, ErrValidation.WithOrigin(pkgerrors.New("age out of range")))
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, []string{"validation errors"}, body.Errors)
	require.Contains(t, body.Origin, "age out of range")
}

func TestFailUnknownErrorIsInternal(t *testing.T) {
	w, body := serve(t, &config.Config{Mode: config.ModeRelease}, func(c *gin.Context) {
		Fail(c, pkgerrors.New("disk on fire"))
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", body.Error)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	w, body := serve(t, &config.Config{Mode: config.ModeRelease}, func(c *gin.Context) {
		panic("boom")
	})
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "internal server error", body.Error)
}

func TestErrorIs(t *testing.T) {
	wrapped := ErrCamperNotFound.WithOrigin(pkgerrors.New("record not found"))
	require.ErrorIs(t, wrapped, ErrCamperNotFound)
	require.NotErrorIs(t, wrapped, ErrActivityNotFound)
	require.NotNil(t, wrapped.StackTrace())
	require.EqualError(t, pkgerrors.Cause(wrapped.Unwrap()), "record not found")
}
