package module

import (
	"camp-activity-system/internal/module/activity"
	"camp-activity-system/internal/module/camper"
	"camp-activity-system/internal/module/ping"
	"camp-activity-system/internal/module/signup"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&camper.ModuleCamper{},
		&activity.ModuleActivity{},
		&signup.ModuleSignup{},
	})
}
