package test

import (
	"net/http/httptest"
	"testing"

	"camp-activity-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应状态码与错误消息符合 expected
func ErrorEqual(t *testing.T, expected *response.Error, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, int(expected.Code), w.Code, "body: %s", w.Body.String())

	body := DecodeBody[response.ResponseBody](t, w)
	if len(body.Errors) > 0 {
		require.Equal(t, []string{expected.Message}, body.Errors)
		return
	}
	require.Equal(t, expected.Message, body.Error)
}
