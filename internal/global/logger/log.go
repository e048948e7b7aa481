package logger

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"camp-activity-system/config"

	sentryslog "github.com/getsentry/sentry-go/slog"
	"gopkg.in/natefinch/lumberjack.v2"
)

const appName = "camp-activity-system"

// RequestIDKey 是 gin.Context 中保存请求 ID 的键
const RequestIDKey = "request_id"

var (
	instance *slog.Logger
	once     sync.Once
)

// fanout 把同一条记录交给多个 handler，某个 handler 失败不影响其他 handler
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithAttrs(attrs) })
}

func (f fanout) WithGroup(name string) slog.Handler {
	return f.each(func(h slog.Handler) slog.Handler { return h.WithGroup(name) })
}

func (f fanout) each(fn func(slog.Handler) slog.Handler) fanout {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = fn(h)
	}
	return out
}

// Get 全局 Logger，第一次调用时按当前配置构造
func Get() *slog.Logger {
	once.Do(func() {
		cfg := config.Get()
		instance = slog.New(newHandler(cfg, os.Stdout)).With(
			"app_name", appName,
			"env", string(cfg.Mode),
		)
	})
	return instance
}

// newHandler release 模式且配置了文件路径时写 JSON 到轮转文件，否则写文本到 stdout
// 配置了 Sentry DSN 时，Warn 以上同时作为 Sentry Log，Error 作为 Event
func newHandler(cfg *config.Config, stdout io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: cfg.Mode == config.ModeRelease,
		Level:     getLogLevel(cfg.Log.Level),
	}

	var base slog.Handler
	if cfg.Mode == config.ModeRelease && cfg.Log.FilePath != "" {
		base = slog.NewJSONHandler(&lumberjack.Logger{
			Filename:   cfg.Log.FilePath,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}, opts)
	} else {
		base = slog.NewTextHandler(stdout, opts)
	}

	if cfg.Sentry.Dsn == "" {
		return base
	}
	return fanout{base, sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   []slog.Level{slog.LevelWarn, slog.LevelError},
		AddSource:  opts.AddSource,
	}.NewSentryHandler(context.Background())}
}

// New 带 module 字段的 Logger
func New(module string) *slog.Logger {
	return Get().With("module", module)
}

// RequestInfo 是 *gin.Context 中日志需要的部分
type RequestInfo interface {
	ClientIP() string
	GetHeader(string) string
	GetString(string) string
}

// WithContext 附加 client_ip、request_id 以及代理转发的 x_forwarded_for
func WithContext(base *slog.Logger, c RequestInfo) *slog.Logger {
	attrs := []any{"client_ip", c.ClientIP()}
	if id := c.GetString(RequestIDKey); id != "" {
		attrs = append(attrs, "request_id", id)
	}
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		attrs = append(attrs, "x_forwarded_for", fwd)
	}
	return base.With(attrs...)
}

func getLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
