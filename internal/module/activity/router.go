package activity

import "github.com/gin-gonic/gin"

func (p *ModuleActivity) InitRouter(r *gin.RouterGroup) {
	activityGroup := r.Group("/activities")
	{
		activityGroup.GET("", ListActivities)
		activityGroup.GET("/:id", GetActivity)
		activityGroup.DELETE("/:id", DeleteActivity)
	}
}
