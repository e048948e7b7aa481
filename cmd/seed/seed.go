// Package seed 用演示数据重置数据库
package seed

import (
	"camp-activity-system/internal/global/logger"
	"camp-activity-system/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

var campers = []model.Camper{
	{Name: "Caitlin", Age: 8},
	{Name: "Lizzie", Age: 9},
	{Name: "Nicholas", Age: 11},
	{Name: "Ashley", Age: 12},
	{Name: "Marcus", Age: 14},
	{Name: "Priya", Age: 17},
}

var activities = []model.Activity{
	{Name: "Archery", Difficulty: 2},
	{Name: "Swimming", Difficulty: 3},
	{Name: "Hiking by the stream", Difficulty: 1},
	{Name: "Rock climbing", Difficulty: 5},
	{Name: "Canoeing", Difficulty: 4},
}

// Run 清空三张表后写入演示数据，每个营员报名两项活动
func Run(db *gorm.DB) error {
	log := logger.New("Seed")

	return db.Transaction(func(tx *gorm.DB) error {
		for _, m := range []any{&model.Signup{}, &model.Camper{}, &model.Activity{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
				return errors.Wrapf(err, "clear %T", m)
			}
		}

		cs := append([]model.Camper(nil), campers...)
		if err := tx.Create(&cs).Error; err != nil {
			return errors.Wrap(err, "create campers")
		}
		as := append([]model.Activity(nil), activities...)
		if err := tx.Create(&as).Error; err != nil {
			return errors.Wrap(err, "create activities")
		}

		var signups []model.Signup
		for i, c := range cs {
			for j := 0; j < 2; j++ {
				a := as[(i+j)%len(as)]
				signups = append(signups, model.Signup{
					Time:       9 + (i+3*j)%12,
					CamperID:   c.ID,
					ActivityID: a.ID,
				})
			}
		}
		if err := tx.Create(&signups).Error; err != nil {
			return errors.Wrap(err, "create signups")
		}

		log.Info("seeded", "campers", len(cs), "activities", len(as), "signups", len(signups))
		return nil
	})
}
