package tools

import (
	"fmt"
	"io"
	"net/url"
	"os"

	"github.com/gin-gonic/gin"
)

func PanicOnErr(err error) {
	if err != nil {
		panic(err)
	}
}

func FileExist(path string) bool {
	_, err := os.Stat(path)
	if err == nil {
		return true // 文件存在
	}
	// 不存在或其他错误（如权限问题）都视为不可用
	return false
}

const (
	ExcelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// SendAttachment 以附件形式把 src 写入响应
func SendAttachment(c *gin.Context, displayName, contentType string, src io.WriterTo) error {
	escaped := url.QueryEscape(displayName)

	c.Header("Content-Type", contentType)
	c.Header(
		"Content-Disposition",
		fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`, escaped, escaped),
	)
	c.Status(200)

	_, err := src.WriteTo(c.Writer)
	return err
}
