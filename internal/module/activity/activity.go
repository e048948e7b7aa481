package activity

import (
	"net/http"

	"camp-activity-system/internal/global/context"
	"camp-activity-system/internal/global/database"
	"camp-activity-system/internal/global/response"
	"camp-activity-system/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ListActivities 活动列表，不含 signups
func ListActivities(c *gin.Context) {
	var activities []model.Activity
	if err := database.DB.WithContext(c.Request.Context()).Order("id").Find(&activities).Error; err != nil {
		log.Error("查询活动列表失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, model.NewActivityViews(activities))
}

// GetActivity 活动详情，signups 中嵌套 camper
func GetActivity(c *gin.Context) {
	id, ok := context.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrActivityNotFound)
		return
	}

	var activity model.Activity
	err := database.DB.WithContext(c.Request.Context()).
		Preload("Signups", func(db *gorm.DB) *gorm.DB {
			return db.Order("signups.time, signups.id")
		}).
		Preload("Signups.Camper").
		First(&activity, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		log.Error("查询活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, model.NewActivityDetail(&activity))
}

// DeleteActivity 删除活动及其 signups
func DeleteActivity(c *gin.Context) {
	id, ok := context.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrActivityNotFound)
		return
	}

	var removed int64
	err := database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var activity model.Activity
		if err := tx.First(&activity, id).Error; err != nil {
			return err
		}
		// 不依赖数据库的级联外键
		result := tx.Where("activity_id = ?", activity.ID).Delete(&model.Signup{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected
		return tx.Delete(&activity).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrActivityNotFound)
			return
		}
		log.Error("删除活动失败", "error", err, "id", id)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("活动删除成功", "id", id, "signups_removed", removed)
	response.NoContent(c)
}
