package main

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/middleware"
	"github.com/AkumaMonarch/NekoEats/internal/realtime"

	"github.com/labstack/echo/v4"
)

// registerEventRoutes exposes the change feed as server-sent events. The
// admin dashboard subscribes and refetches whatever a notification names.
func registerEventRoutes(g *echo.Group, hub *realtime.Hub) {
	p := g.Group("/events")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("", func(c echo.Context) error {
		w := c.Response()
		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		w.Flush()

		events, cancel := hub.Subscribe()
		defer cancel()

		for {
			select {
			case <-c.Request().Context().Done():
				return nil
			case ev, ok := <-events:
				if !ok {
					return nil
				}
				data, err := json.Marshal(ev)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
					return nil
				}
				w.Flush()
			}
		}
	})
}
