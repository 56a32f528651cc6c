package handlers

import (
	"errors"
	"net/http"

	"aurora-agency-site/app/server/auth"
	"aurora-agency-site/app/server/models"
	"aurora-agency-site/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) UserCreate(c echo.Context) error {
	// 绑定请求体
	var req types.UserCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if req.Email == nil || req.Password == nil {
		return a.er(c, http.StatusBadRequest)
	}

	input := models.NewUserInput{Email: *req.Email}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.IsAdmin != nil {
		input.IsAdmin = *req.IsAdmin
	}

	user, err := a.auth.AddUser(input, *req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthorized):
			return a.er(c, a.unauthorizedStatus())
		case errors.Is(err, auth.ErrEmailInUse):
			return a.er(c, http.StatusConflict)
		default:
			a.l.Error("failed to create user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	return c.JSON(http.StatusCreated, user)
}

func (a *App) UserList(c echo.Context) error {
	// 非管理员会话会拿到空列表，这是刻意的信息隐藏，不是错误
	return c.JSON(http.StatusOK, a.auth.GetAllUsers())
}

func (a *App) UserInfoGet(c echo.Context) error {
	user := a.auth.GetUser(c.Param("id"))
	if user == nil {
		return a.er(c, http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, user)
}

func (a *App) UserInfoUpdate(c echo.Context) error {
	id := c.Param("id")

	// 绑定请求体
	var req types.UserUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	user, err := a.auth.UpdateUser(id, models.UserPatch{
		Name:    req.Name,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		if errors.Is(err, auth.ErrUnauthorized) {
			return a.er(c, a.unauthorizedStatus())
		}
		if errors.Is(err, auth.ErrCannotDemoteLastAdmin) {
			return a.erMsg(c, http.StatusConflict, err.Error())
		}
		a.l.Error("failed to update user", zap.String("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
	if user == nil {
		return a.er(c, http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, user)
}

func (a *App) UserDelete(c echo.Context) error {
	id := c.Param("id")

	deleted, err := a.auth.DeleteUser(id)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUnauthorized):
			return a.er(c, a.unauthorizedStatus())
		case errors.Is(err, auth.ErrCannotDeleteAdmin):
			return a.erMsg(c, http.StatusConflict, err.Error())
		default:
			a.l.Error("failed to delete user", zap.String("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}
	if !deleted {
		return a.er(c, http.StatusNotFound)
	}

	return c.NoContent(http.StatusNoContent)
}
