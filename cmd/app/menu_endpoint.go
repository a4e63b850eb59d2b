package main

import (
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

type stockRequest struct {
	InStock bool `json:"in_stock"`
}

func registerMenuRoutes(g *echo.Group, ms *services.MenuService) {
	p := g.Group("/menu")

	// public catalog
	p.GET("", func(c echo.Context) error {
		items, err := ms.GetAll(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	p.GET("/popular", func(c echo.Context) error {
		items, err := ms.GetPopular(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	p.GET("/category/:category", func(c echo.Context) error {
		items, err := ms.GetByCategory(c.Request().Context(), c.Param("category"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, items)
	})

	p.GET("/:id", func(c echo.Context) error {
		item, err := ms.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, item)
	})

	// admin management
	admin := p.Group("")
	admin.Use(middleware.JWTMiddleware())
	admin.Use(middleware.AdminOnly)

	admin.POST("", func(c echo.Context) error {
		item := new(model.MenuItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		created, err := ms.Create(c.Request().Context(), item)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, created)
	})

	admin.PUT("/:id", func(c echo.Context) error {
		item := new(model.MenuItem)
		if err := c.Bind(item); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		item.ID = c.Param("id")
		updated, err := ms.Update(c.Request().Context(), item)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, updated)
	})

	admin.PATCH("/:id/stock", func(c echo.Context) error {
		req := new(stockRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := ms.ToggleStock(c.Request().Context(), c.Param("id"), req.InStock); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	admin.DELETE("/:id", func(c echo.Context) error {
		if err := ms.Delete(c.Request().Context(), c.Param("id")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "deleted"})
	})
}
