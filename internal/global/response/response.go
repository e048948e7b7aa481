package response

import (
	"errors"
	"net/http"

	"camp-activity-system/config"
	"camp-activity-system/internal/global/logger"
	"camp-activity-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
	pkgerrors "github.com/pkg/errors"
)

// ResponseBody 错误响应体
// 400 使用 errors 列表，其余状态码使用单个 error 字段
type ResponseBody struct {
	Error  string   `json:"error,omitempty"`
	Errors []string `json:"errors,omitempty"`
	Origin string   `json:"origin,omitempty"`
}

// Success 直接把 data 序列化为响应体
func Success(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// NoContent 返回空响应体
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Fail 输出错误响应并中止后续处理
// 非 *Error 的错误统一视为 500
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}
	c.Set(ErrorContextKey, e)

	if e.Code >= http.StatusInternalServerError {
		sentry.CaptureException(c, e)
	}

	body := ResponseBody{}
	if e.Code == http.StatusBadRequest {
		body.Errors = []string{e.Message}
	} else {
		body.Error = e.Message
	}
	if config.Get().ExposeErrorOrigin {
		body.Origin = e.Origin
	}
	c.AbortWithStatusJSON(int(e.Code), body)
}

// Recovery 需要以 defer 方式调用，把 panic 转为 500 响应
func Recovery(c *gin.Context) {
	r := recover()
	if r == nil {
		return
	}
	err, ok := r.(error)
	if !ok {
		err = pkgerrors.Errorf("%v", r)
	}
	logger.WithContext(logger.New("Recovery"), c).Error("panic recovered",
		"error", err,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)
	Fail(c, ErrServerInternal.WithOrigin(err))
}
