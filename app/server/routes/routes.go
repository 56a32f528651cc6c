// Package routes 把处理函数绑定到导航面和 API 路径上
package routes

import (
	"aurora-agency-site/app/server/handlers"
	"aurora-agency-site/app/server/navigation"

	"github.com/labstack/echo/v4"
)

func Register(e *echo.Echo, a *handlers.App) {
	// 认证
	e.POST("/api/auth/login", a.AuthLogin)
	e.POST("/api/auth/signup", a.AuthSignup)
	e.POST("/api/auth/logout", a.AuthLogout)
	e.GET("/api/auth/session", a.AuthSession)

	// 用户管理（权限由存储层判定）
	e.GET("/api/admin/users", a.UserList)
	e.POST("/api/admin/users", a.UserCreate)
	e.DELETE("/api/admin/users/:id", a.UserDelete)
	e.GET("/api/users/:id", a.UserInfoGet)
	e.PATCH("/api/users/:id", a.UserInfoUpdate)

	// 背景设置
	e.GET("/api/background", a.BackgroundGet)
	e.PUT("/api/background", a.BackgroundUpdate)

	// 展示内容
	e.GET("/api/content/services", a.ContentServices)
	e.GET("/api/content/highlights", a.ContentHighlights)
	e.GET("/api/content/events", a.ContentEvents)
	e.GET("/api/content/products", a.ContentProducts)
	e.GET("/api/content/models", a.ContentModels)

	// 导航
	e.GET("/api/navigation", a.NavigationRoutes)
	e.GET("/api/navigation/resolve", a.NavigationResolve)

	// 健康检查
	e.GET("/healthcheck", a.HealthCheck)

	// 页面路由：固定导航面 + 兜底
	for _, route := range navigation.Routes() {
		e.GET(route.Path, a.Page)
	}
	e.RouteNotFound(navigation.NotFoundPath, a.PageNotFound)
}
