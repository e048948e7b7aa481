package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"camp-activity-system/config"
	"camp-activity-system/internal/global/database"
	"camp-activity-system/internal/global/logger"
	"camp-activity-system/internal/global/middleware"
	"camp-activity-system/internal/global/sentry"
	"camp-activity-system/internal/module"
	"camp-activity-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

var log *slog.Logger

func Init() {
	config.Init()
	log = logger.New("Server")

	if err := sentry.Init(); err != nil {
		log.Error("Sentry init failed", "error", err)
	}

	database.Init()

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

// NewEngine 组装中间件和各模块路由，模块需要已经 Init
func NewEngine() *gin.Engine {
	if log == nil {
		log = logger.New("Server")
	}
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	r.Use(middleware.RequestID())
	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	default:
		r.Use(gin.Logger())
	}
	r.Use(sentry.Middleware())
	r.Use(middleware.SentryEnrichIP())
	r.Use(middleware.Cors(config.Get().AllowOrigins))
	r.Use(middleware.Recovery())
	r.Use(middleware.Metrics())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	return r
}

// Run 启动 HTTP 服务，收到 SIGINT/SIGTERM 后优雅退出
func Run() {
	srv := &http.Server{
		Addr:    config.Get().Host + ":" + config.Get().Port,
		Handler: NewEngine(),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			tools.PanicOnErr(err)
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown failed", "error", err)
	}
	sentry.Flush(2 * time.Second)
}
