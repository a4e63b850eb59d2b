package main

import (
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

func registerSettingsRoutes(g *echo.Group, ss *services.SettingsService) {
	p := g.Group("/settings")

	// public: the storefront needs is_open, schedule, VAT and service flags
	p.GET("", func(c echo.Context) error {
		settings, err := ss.Get(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, settings)
	})

	admin := p.Group("")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.PUT("", func(c echo.Context) error {
		settings := new(model.StoreSettings)
		if err := c.Bind(settings); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		updated, err := ss.Update(c.Request().Context(), settings)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, updated)
	})
}
