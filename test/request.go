package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// Router 是各业务模块的最小接口
type Router interface {
	Init()
	InitRouter(r *gin.RouterGroup)
}

// NewRouter 构造只挂载给定模块的 gin 引擎
func NewRouter(modules ...Router) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, m := range modules {
		m.Init()
		m.InitRouter(r.Group("/"))
	}
	return r
}

// DoRequest 发送请求，body 为 string 时原样发送，否则编码为 JSON
func DoRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		requestBytes, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(requestBytes)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeBody 把响应体解码为 T
func DecodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
