package main

import (
	"fmt"
	"log"

	"aurora-agency-site/app/server/auth"
	"aurora-agency-site/app/server/background"
	"aurora-agency-site/app/server/handlers"
	"aurora-agency-site/app/server/inits"
	"aurora-agency-site/app/server/routes"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	// 初始化配置
	cfg, err := inits.Config()
	if err != nil {
		log.Fatal(fmt.Errorf("error loading config: %w", err))
	}

	// 初始化日志
	l, err := inits.Logger(!cfg.System.IsProd)
	if err != nil {
		log.Fatal(fmt.Errorf("error initializing logger: %w", err))
	}

	// 切换日志系统
	l.Debug("logger initialized")

	// 初始化本地存储
	store, err := inits.Storage(cfg.System.DataPath)
	if err != nil {
		l.Fatal("error initializing storage", zap.Error(err))
	}
	defer store.Close()

	// 初始化认证与用户存储（首次运行写入初始账号）
	authStore, err := auth.New(store, l)
	if err != nil {
		l.Fatal("error initializing auth store", zap.Error(err))
	}

	// 初始化背景偏好存储
	bgStore, err := background.New(store)
	if err != nil {
		l.Fatal("error initializing background store", zap.Error(err))
	}

	// 准备 handler app
	handlerApp := handlers.NewApp(l, authStore, bgStore)

	// 准备 echo 服务
	e := echo.New()
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			l.Info("request",
				zap.String("URI", v.URI),
				zap.Int("status", v.Status),
			)

			return nil
		},
	}))
	e.Use(middleware.Recover())

	// 绑定路由
	routes.Register(e, handlerApp)

	// 启动 echo 服务
	if err := e.Start(cfg.System.Listen); err != nil {
		l.Fatal("shutting down the server", zap.Error(err))
	}
}
