package context

import (
	"strconv"

	"camp-activity-system/internal/global/database"
	"camp-activity-system/internal/global/response"
	"camp-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// ParamID 解析路径参数 :id，非正整数返回 false
func ParamID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// WriteError 把写库失败归类：校验失败和外键缺失是 400，其余是 500
func WriteError(err error) *response.Error {
	if errors.Is(err, model.ErrInvalid) ||
		errors.Is(err, model.ErrMissingReference) ||
		database.IsForeignKeyViolation(err) {
		return response.ErrValidation.WithOrigin(err)
	}
	return response.ErrServerInternal.WithOrigin(err)
}
