package handlers

import (
	"net/http"

	"aurora-agency-site/app/server/models"
	"aurora-agency-site/app/server/types"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) BackgroundGet(c echo.Context) error {
	// 每个页面都要渲染背景，这个接口对所有人开放
	return c.JSON(http.StatusOK, a.bg.Get())
}

func (a *App) BackgroundUpdate(c echo.Context) error {
	// 只允许管理员修改
	if !a.auth.IsAdmin() {
		return a.er(c, a.unauthorizedStatus())
	}

	// 绑定请求体
	var req types.BackgroundUpdateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}
	if req.Type == nil {
		return a.er(c, http.StatusBadRequest)
	}

	settings := models.BackgroundSettings{Type: models.BackgroundType(*req.Type)}
	if req.MediaURL != nil {
		settings.MediaURL = *req.MediaURL
	}

	// 表单级校验在这一层做，存储本身接受任何组合
	switch settings.Type {
	case models.BackgroundTypeParticles:
	case models.BackgroundTypeImage, models.BackgroundTypeVideo:
		if settings.MediaURL == "" {
			return a.erMsg(c, http.StatusBadRequest, "mediaUrl is required for image and video backgrounds")
		}
	default:
		return a.er(c, http.StatusBadRequest)
	}

	if err := a.bg.Set(settings); err != nil {
		a.l.Error("failed to update background settings", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.NoContent(http.StatusNoContent)
}
