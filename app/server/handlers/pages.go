package handlers

import (
	"net/http"

	"aurora-agency-site/app/server/navigation"

	"github.com/labstack/echo/v4"
)

// Page 按注册路径在导航面里找到当前路由。受保护的路由在会话不满足条件时
// 重定向到登录页（管理面板、用户设置页的行为）。
func (a *App) Page(c echo.Context) error {
	route, ok := navigation.RouteFor(c.Path())
	if !ok {
		return a.er(c, http.StatusNotFound)
	}

	if route.RequiresAuth && !a.auth.IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, navigation.SignInPath)
	}
	if route.RequiresAdmin && !a.auth.IsAdmin() {
		return c.Redirect(http.StatusSeeOther, navigation.SignInPath)
	}

	return c.JSON(http.StatusOK, route)
}

// PageNotFound 是兜底路由的处理函数
func (a *App) PageNotFound(c echo.Context) error {
	return a.er(c, http.StatusNotFound)
}
