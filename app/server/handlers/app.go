package handlers

import (
	"aurora-agency-site/app/server/auth"
	"aurora-agency-site/app/server/background"

	"go.uber.org/zap"
)

type App struct {
	l    *zap.Logger       // 日志
	auth *auth.Store       // 认证与用户存储
	bg   *background.Store // 背景偏好存储
}

func NewApp(l *zap.Logger, authStore *auth.Store, bgStore *background.Store) *App {
	return &App{
		l:    l,
		auth: authStore,
		bg:   bgStore,
	}
}
