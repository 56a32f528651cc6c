package handlers

import (
	"errors"
	"net/http"

	"aurora-agency-site/app/server/auth"
	"aurora-agency-site/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// 登录失败统一对外展示这一条信息，不区分邮箱不存在和密码错误
const invalidCredentialsMessage = "invalid email or password"

func (a *App) AuthLogin(c echo.Context) error {
	// 绑定请求体
	var req types.LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	// 没有写邮箱或密码
	if req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest)
	}

	user, err := a.auth.Login(*req.Email, *req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return a.erMsg(c, http.StatusUnauthorized, invalidCredentialsMessage)
		}
		a.l.Error("failed to login", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, user)
}

func (a *App) AuthSignup(c echo.Context) error {
	// 绑定请求体
	var req types.SignupRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest)
	}

	name := ""
	if req.Name != nil {
		name = *req.Name
	}

	user, err := a.auth.Signup(*req.Email, *req.Password, name)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return a.er(c, http.StatusBadRequest)
		}
		if errors.Is(err, auth.ErrEmailInUse) {
			return a.er(c, http.StatusConflict)
		}
		a.l.Error("failed to signup", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusCreated, user)
}

func (a *App) AuthLogout(c echo.Context) error {
	a.auth.Logout()
	return c.NoContent(http.StatusNoContent)
}

func (a *App) AuthSession(c echo.Context) error {
	user := a.auth.CurrentUser()
	if user == nil {
		return c.NoContent(http.StatusNoContent)
	}

	return c.JSON(http.StatusOK, user)
}

// 权限不足时，未登录返回 401 ，已登录但不是管理员返回 403
func (a *App) unauthorizedStatus() int {
	if a.auth.IsAuthenticated() {
		return http.StatusForbidden
	}
	return http.StatusUnauthorized
}
