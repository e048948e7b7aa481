package tracing

import (
	"time"

	"camp-activity-system/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 为每条 SQL 创建子 span
type GormTracingPlugin struct {
	// slowThreshold 以下的查询不发送，0 表示全部记录
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	threshold := time.Duration(config.Get().Sentry.Tracing.DBSlowThresholdMs) * time.Millisecond
	return &GormTracingPlugin{
		slowThreshold: threshold,
	}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 注册 GORM 回调
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	system := db.Dialector.Name()

	cb := db.Callback()
	if err := cb.Create().Before("gorm:create").Register(callbackPrefix+":before_create", p.before("db.sql.create", system)); err != nil {
		return err
	}
	if err := cb.Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.before("db.sql.query", system)); err != nil {
		return err
	}
	if err := cb.Update().Before("gorm:update").Register(callbackPrefix+":before_update", p.before("db.sql.update", system)); err != nil {
		return err
	}
	if err := cb.Delete().Before("gorm:delete").Register(callbackPrefix+":before_delete", p.before("db.sql.delete", system)); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.before("db.sql.raw", system)); err != nil {
		return err
	}

	if err := cb.Create().After("gorm:create").Register(callbackPrefix+":after_create", p.after); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register(callbackPrefix+":after_query", p.after); err != nil {
		return err
	}
	if err := cb.Update().After("gorm:update").Register(callbackPrefix+":after_update", p.after); err != nil {
		return err
	}
	if err := cb.Delete().After("gorm:delete").Register(callbackPrefix+":after_delete", p.after); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.after)
}

func (p *GormTracingPlugin) before(operation, system string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}
		db.InstanceSet(gormStartKey, time.Now())

		// 只在请求已有 transaction 时创建子 span
		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		span.Description = tableOf(db)
		span.SetData("db.system", system)

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	if db.Statement == nil {
		return
	}
	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	startTime, ok := startVal.(time.Time)
	if !ok {
		return
	}
	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	if p.slowThreshold > 0 && time.Since(startTime) < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}
	span.Finish()
}

// tableOf 使用表名作为描述，避免把完整 SQL（可能含敏感数据）发送出去
func tableOf(db *gorm.DB) string {
	if db.Statement == nil || db.Statement.Table == "" {
		return "unknown"
	}
	return db.Statement.Table
}
