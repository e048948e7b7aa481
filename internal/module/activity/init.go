package activity

import (
	"camp-activity-system/internal/global/logger"
	"log/slog"
)

var log *slog.Logger

type ModuleActivity struct{}

func (p *ModuleActivity) GetName() string {
	return "Activity"
}

func (p *ModuleActivity) Init() {
	log = logger.New("Activity")
}
