package main

import (
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

func registerCategoryRoutes(g *echo.Group, cs *services.CategoryService) {
	p := g.Group("/categories")

	p.GET("", func(c echo.Context) error {
		cats, err := cs.GetAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cats)
	})

	admin := p.Group("")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		cat := new(model.CategoryItem)
		if err := c.Bind(cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		created, err := cs.Create(c.Request().Context(), cat)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	})

	admin.PUT("/:id", func(c echo.Context) error {
		cat := new(model.CategoryItem)
		if err := c.Bind(cat); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		cat.ID = c.Param("id")
		updated, err := cs.Update(c.Request().Context(), cat)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, updated)
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		if err := cs.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
