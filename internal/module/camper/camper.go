package camper

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

// CamperCreateReq 创建营员请求，字段规则由模型校验
type CamperCreateReq struct {
	Name string `json:"name"`
	Age  *int   `json:"age" binding:"required"`
}

// CamperUpdateReq 可修改字段的白名单，nil 表示不修改
type CamperUpdateReq struct {
	Name *string `json:"name"`
	Age  *int    `json:"age"`
}

// ListCampers 营员列表，不含 signups
func ListCampers(c *gin.Context) {
	var campers []model.Camper
	if err := database.DB.WithContext(c.Request.Context()).Order("id").Find(&campers).Error; err != nil {
		log.Error("查询营员列表失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, model.NewCamperViews(campers))
}

// CreateCamper 创建营员
func CreateCamper(c *gin.Context) {
	var req CamperCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定创建营员请求失败", "error", err)
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	camper := model.Camper{
		Name: req.Name,
		Age:  *req.Age,
	}
	if err := database.DB.WithContext(c.Request.Context()).Create(&camper).Error; err != nil {
		log.Warn("创建营员失败", "error", err, "name", req.Name, "age", *req.Age)
		response.Fail(c, context.WriteError(err))
		return
	}

	log.Info("营员创建成功", "id", camper.ID, "name", camper.Name)
	response.Success(c, http.StatusCreated, model.NewCamperView(&camper))
}

// GetCamper 营员详情，signups 中嵌套 activity
func GetCamper(c *gin.Context) {
	id, ok := context.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrCamperNotFound)
		return
	}

	var camper model.Camper
	err := database.DB.WithContext(c.Request.Context()).
		Preload("Signups", func(db *gorm.DB) *gorm.DB {
			return db.Order("signups.id")
		}).
		Preload("Signups.Activity").
		First(&camper, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrCamperNotFound)
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	response.Success(c, http.StatusOK, model.NewCamperDetail(&camper))
}

// UpdateCamper 按白名单修改营员字段，校验失败时不落库
func UpdateCamper(c *gin.Context) {
	id, ok := context.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrCamperNotFound)
		return
	}

	var camper model.Camper
	if err := database.DB.WithContext(c.Request.Context()).First(&camper, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrCamperNotFound)
			return
		}
		log.Error("查询营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	var req CamperUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("绑定更新营员请求失败", "error", err, "id", id)
		response.Fail(c, response.ErrValidation.WithOrigin(err))
		return
	}

	if req.Name != nil {
		camper.Name = *req.Name
	}
	if req.Age != nil {
		camper.Age = *req.Age
	}

	if err := database.DB.WithContext(c.Request.Context()).Save(&camper).Error; err != nil {
		log.Warn("更新营员失败", "error", err, "id", id)
		response.Fail(c, context.WriteError(err))
		return
	}

	log.Info("营员更新成功", "id", camper.ID, "name", camper.Name, "age", camper.Age)
	response.Success(c, http.StatusAccepted, model.NewCamperView(&camper))
}

// DeleteCamper 删除营员及其 signups
func DeleteCamper(c *gin.Context) {
	id, ok := context.ParamID(c)
	if !ok {
		response.Fail(c, response.ErrCamperNotFound)
		return
	}

	err := database.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		var camper model.Camper
		if err := tx.First(&camper, id).Error; err != nil {
			return err
		}
		// 不依赖数据库的级联外键
		if err := tx.Where("camper_id = ?", camper.ID).Delete(&model.Signup{}).Error; err != nil {
			return err
		}
		return tx.Delete(&camper).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Fail(c, response.ErrCamperNotFound)
			return
		}
		log.Error("删除营员失败", "error", err, "id", id)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("营员删除成功", "id", id)
	response.NoContent(c)
}
