package handlers

import (
	"net/http"

	"aurora-agency-site/app/server/content"
	"aurora-agency-site/app/server/navigation"

	"github.com/labstack/echo/v4"
)

func (a *App) ContentServices(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Services())
}

func (a *App) ContentHighlights(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Highlights())
}

func (a *App) ContentEvents(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Events())
}

func (a *App) ContentProducts(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Products())
}

func (a *App) ContentModels(c echo.Context) error {
	return c.JSON(http.StatusOK, content.Models())
}

func (a *App) NavigationRoutes(c echo.Context) error {
	return c.JSON(http.StatusOK, navigation.Routes())
}

func (a *App) NavigationResolve(c echo.Context) error {
	section := c.QueryParam("section")
	from := c.QueryParam("from")
	if section == "" {
		return a.er(c, http.StatusBadRequest)
	}

	target, ok := navigation.ResolveSection(section, from)
	if !ok {
		return a.er(c, http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, target)
}
