package database

import (
	"errors"
	"fmt"
	"strings"

	"camp-activity-system/config"
	"camp-activity-system/internal/global/logger"
	"camp-activity-system/internal/global/sentry/tracing"
	"camp-activity-system/internal/model"
	"camp-activity-system/tools"

	"github.com/glebarez/sqlite"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// autoMigrateModels 需要自动迁移的模型，父表在前
var autoMigrateModels = []any{
	&model.Camper{},
	&model.Activity{},
	&model.Signup{},
}

func Init() {
	db, err := Open(config.Get())
	tools.PanicOnErr(err)
	DB = db
}

// Open 按配置连接数据库并完成自动迁移
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{}
	switch cfg.Mode {
	case config.ModeRelease:
		gormConfig.Logger = gormlogger.Discard
	default:
		gormConfig.Logger = gormlogger.Default.LogMode(gormlogger.Info)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, err
	}

	if cfg.Database.Driver != config.DriverMysql {
		// sqlite 同一时刻只允许一个写者，内存库在多连接下也不共享
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if tracing.IsEnabled() {
		if err := db.Use(tracing.NewGormTracingPlugin()); err != nil {
			return nil, err
		}
	}

	if err := db.AutoMigrate(autoMigrateModels...); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverMysql:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.Mysql.Username,
			cfg.Mysql.Password,
			cfg.Mysql.Host,
			cfg.Mysql.Port,
			cfg.Mysql.DBName,
		)
		return mysql.Open(dsn), nil
	case config.DriverSqlite, "":
		return sqlite.Open(SqliteDSN(cfg.Sqlite.Path)), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// SqliteDSN 为 sqlite 路径追加外键 pragma，已经是完整 DSN 时原样补充参数
func SqliteDSN(path string) string {
	if !tools.FileExist(path) && !strings.HasPrefix(path, "file:") {
		logger.New("Database").Info("creating sqlite database", "path", path)
	}
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// IsForeignKeyViolation 判断是否为外键约束失败
func IsForeignKeyViolation(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		// 1452: Cannot add or update a child row: a foreign key constraint fails
		return mysqlErr.Number == 1452
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
