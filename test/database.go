package test

import (
	"fmt"
	"sync/atomic"
	"testing"

	"camp-activity-system/config"
	"camp-activity-system/internal/global/database"
	"camp-activity-system/internal/model"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dbSeq atomic.Int64

// SetupDB 为当前测试创建独立的内存 sqlite 库，并替换 database.DB
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{
		Mode: config.ModeRelease,
		Database: config.Database{
			Driver: config.DriverSqlite,
			Sqlite: config.Sqlite{Path: fmt.Sprintf("file:camp_test_%d?mode=memory&cache=shared", dbSeq.Add(1))},
		},
	}
	config.Set(cfg)

	db, err := database.Open(cfg)
	require.NoError(t, err)

	prev := database.DB
	database.DB = db
	t.Cleanup(func() {
		database.DB = prev
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
		config.Set(nil)
	})
	return db
}

func CreateCamper(t *testing.T, db *gorm.DB, name string, age int) *model.Camper {
	t.Helper()
	c := &model.Camper{Name: name, Age: age}
	require.NoError(t, db.Create(c).Error)
	return c
}

func CreateActivity(t *testing.T, db *gorm.DB, name string, difficulty int) *model.Activity {
	t.Helper()
	a := &model.Activity{Name: name, Difficulty: difficulty}
	require.NoError(t, db.Create(a).Error)
	return a
}

func CreateSignup(t *testing.T, db *gorm.DB, camper *model.Camper, activity *model.Activity, time int) *model.Signup {
	t.Helper()
	s := &model.Signup{Time: time, CamperID: camper.ID, ActivityID: activity.ID}
	require.NoError(t, db.Create(s).Error)
	return s
}

func Count(t *testing.T, db *gorm.DB, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(m).Count(&n).Error)
	return n
}
