package ping

import (
	"net/http"

	"camp-activity-system/internal/global/response"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

func (p *ModulePing) InitRouter(r *gin.RouterGroup) {
	r.GET("", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	r.GET("/ping", func(c *gin.Context) {
		log.Debug("ping")
		response.Success(c, http.StatusOK, gin.H{
			"message": "pong",
			"version": version,
		})
	})
}
