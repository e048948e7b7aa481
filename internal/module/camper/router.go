package camper

import "github.com/gin-gonic/gin"

func (p *ModuleCamper) InitRouter(r *gin.RouterGroup) {
	camperGroup := r.Group("/campers")
	{
		camperGroup.GET("", ListCampers)
		camperGroup.POST("", CreateCamper)
		camperGroup.GET("/:id", GetCamper)
		camperGroup.PATCH("/:id", UpdateCamper)
		camperGroup.DELETE("/:id", DeleteCamper)
	}
}
