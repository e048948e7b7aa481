// Package tracing 提供 Sentry 性能追踪的集成
package tracing

import (
	"context"

	"camp-activity-system/config"

	"github.com/getsentry/sentry-go"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// StartSpanFromContext 在 ctx 当前的 transaction 下创建子 span，调用方负责 Finish()
// 没有父 span 时 sentry 会开启新的 transaction，SDK 未初始化时 span 不会被发送
func StartSpanFromContext(ctx context.Context, operation, description string) *sentry.Span {
	span := sentry.StartSpan(ctx, operation)
	span.Description = description
	return span
}
