package main

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/AkumaMonarch/NekoEats/external/storage"
	"github.com/AkumaMonarch/NekoEats/internal/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func registerUploadRoutes(g *echo.Group, sc *storage.Client) {
	p := g.Group("/uploads")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.POST("", func(c echo.Context) error {
		if sc == nil {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "object storage not configured"})
		}

		file, err := c.FormFile("image")
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "image file is required"})
		}
		src, err := file.Open()
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		defer src.Close()

		contentType := file.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		path := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(file.Filename))

		url, err := sc.Upload(c.Request().Context(), path, contentType, src)
		if err != nil {
			return c.JSON(http.StatusBadGateway, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"url": url})
	})
}
