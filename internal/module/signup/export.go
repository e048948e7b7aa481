package signup

import (
	"camp-activity-system/internal/global/database"
	"camp-activity-system/internal/global/response"
	"camp-activity-system/internal/global/sentry/tracing"
	"camp-activity-system/internal/model"
	"camp-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Signups"

type exportRow struct {
	ID         uint   `excel:"ID"`
	Time       int    `excel:"Time"`
	Camper     string `excel:"Camper"`
	Age        int    `excel:"Age"`
	Activity   string `excel:"Activity"`
	Difficulty int    `excel:"Difficulty"`
}

// ExportSignups 以 xlsx 导出全部报名，按时间排序
func ExportSignups(c *gin.Context) {
	span := tracing.StartSpanFromContext(c.Request.Context(), "export.xlsx", "build signups workbook")
	defer span.Finish()

	var signups []model.Signup
	if err := database.DB.WithContext(c.Request.Context()).
		Preload("Camper").
		Preload("Activity").
		Order("time, id").
		Find(&signups).Error; err != nil {
		log.Error("查询报名列表失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	rows := lo.Map(signups, func(s model.Signup, _ int) exportRow {
		row := exportRow{ID: s.ID, Time: s.Time}
		if s.Camper != nil {
			row.Camper = s.Camper.Name
			row.Age = s.Camper.Age
		}
		if s.Activity != nil {
			row.Activity = s.Activity.Name
			row.Difficulty = s.Activity.Difficulty
		}
		return row
	})

	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, exportSheet, rows); err != nil {
		log.Error("生成报名表失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}
	if err := f.DeleteSheet("Sheet1"); err != nil {
		log.Warn("删除默认工作表失败", "error", err)
	}
	if idx, err := f.GetSheetIndex(exportSheet); err == nil {
		f.SetActiveSheet(idx)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		log.Error("写出报名表失败", "error", err)
		response.Fail(c, response.ErrServerInternal.WithOrigin(err))
		return
	}

	log.Info("导出报名表", "rows", len(rows))
	if err := tools.SendAttachment(c, "signups.xlsx", tools.ExcelContentType, buf); err != nil {
		log.Warn("发送报名表失败", "error", err)
	}
}
