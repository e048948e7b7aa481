package signup

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

// SignupCreateReq 使用指针区分缺失字段和 0（time 可以为 0）
type SignupCreateReq struct {
	Time       *int  `json:"time" binding:"required"`
	ActivityID *uint `json:"activity_id" binding:"required"`
	CamperID   *uint `json:"camper_id" binding:"required"`
}

// CreateSignup 为营员报名活动
func CreateSignup(c *gin.Context) {
	var req SignupCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定报名请求失败", "error", err)
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	signup := model.Signup{
		Time:       *req.Time,
		CamperID:   *req.CamperID,
		ActivityID: *req.ActivityID,
	}
	err := database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &model.Camper{}, signup.CamperID); err != nil {
			return err
		}
		if err := ensureExists(tx, &model.Activity{}, signup.ActivityID); err != nil {
			return err
		}
		if err := tx.Create(&signup).Error; err != nil {
			return err
		}
		return tx.Preload("Camper").Preload("Activity").First(&signup, signup.ID).Error
	})
	if err != nil {
		log.Warn("创建报名失败", "error", err,
			"camper_id", signup.CamperID,
			"activity_id", signup.ActivityID,
			"time", signup.Time,
		)
		response.Fail(c, context.WriteError(err))
		return
	}

	log.Info("报名成功", "id", signup.ID, "camper_id", signup.CamperID, "activity_id", signup.ActivityID)
	response.Success(c, http.StatusCreated, model.NewSignupDetail(&signup))
}

// ensureExists 检查外键指向的记录，id 为 0 交给模型校验
func ensureExists(tx *gorm.DB, m any, id uint) error {
	if id == 0 {
		return nil
	}
	var n int64
	if err := tx.Model(m).Where("id = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrapf(model.ErrMissingReference, "%T %d", m, id)
	}
	return nil
}
