package main

import (
	"net/http"
	"time"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

func registerReportRoutes(g *echo.Group, rs *services.ReportService) {
	p := g.Group("/reports")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("/dashboard", func(c echo.Context) error {
		stats, err := rs.Dashboard(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats)
	})

	// GET /reports/range?start=2025-06-01&end=2025-06-30
	p.GET("/range", func(c echo.Context) error {
		start, err := time.Parse("2006-01-02", c.QueryParam("start"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid start date, want YYYY-MM-DD"})
		}
		end, err := time.Parse("2006-01-02", c.QueryParam("end"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid end date, want YYYY-MM-DD"})
		}
		if end.Before(start) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "end date before start date"})
		}
		report, err := rs.Range(c.Request().Context(), start, end)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, report)
	})
}
