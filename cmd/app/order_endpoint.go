package main

import (
	"errors"
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/model"
	"github.com/AkumaMonarch/NekoEats/internal/repository"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

type statusRequest struct {
	Status string `json:"status"`
}

// orderError maps the service error taxonomy onto HTTP codes: a lost
// transition race is a 409 so the admin UI can refetch, a missing order is a
// 404, everything else is a plain 400.
func orderError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrStatusChanged):
		return c.JSON(http.StatusConflict, map[string]string{"error": err.Error()})
	case errors.Is(err, repository.ErrOrderNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
}

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("", func(c echo.Context) error {
		orders, err := os.GetAll(c.Request().Context(), c.QueryParam("status"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})

	p.GET("/:id", func(c echo.Context) error {
		order, err := os.GetByID(c.Request().Context(), c.Param("id"))
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, order)
	})

	p.PATCH("/:id/status", func(c echo.Context) error {
		req := new(statusRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := os.UpdateStatus(c.Request().Context(), c.Param("id"), model.OrderStatus(req.Status)); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": req.Status})
	})

	p.POST("/:id/confirm", func(c echo.Context) error {
		if err := os.Confirm(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": model.StatusPending.String()})
	})

	p.POST("/:id/prepare", func(c echo.Context) error {
		if err := os.StartPreparing(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": model.StatusPreparing.String()})
	})

	p.POST("/:id/ready", func(c echo.Context) error {
		if err := os.MarkReady(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": model.StatusReady.String()})
	})

	p.POST("/:id/complete", func(c echo.Context) error {
		if err := os.Complete(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": model.StatusCompleted.String()})
	})

	p.POST("/:id/cancel", func(c echo.Context) error {
		if err := os.Cancel(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"status": model.StatusCancelled.String()})
	})

	p.GET("/:id/history", func(c echo.Context) error {
		history, err := os.GetHistory(c.Request().Context(), c.Param("id"))
		if err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, history)
	})

	p.POST("/:id/revert", func(c echo.Context) error {
		if err := os.Revert(c.Request().Context(), c.Param("id")); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "reverted"})
	})

	p.PUT("/:id", func(c echo.Context) error {
		req := new(services.EditOrderRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := os.Edit(c.Request().Context(), c.Param("id"), *req); err != nil {
			return orderError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})
}
