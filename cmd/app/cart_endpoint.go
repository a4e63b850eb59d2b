package main

import (
	"net/http"

	"github.com/AkumaMonarch/NekoEats/internal/services"

	"github.com/labstack/echo/v4"
)

// cartSession returns the client's cart-session id. The browser generates a
// uuid once and sends it on every cart call, which is what lets a cart
// survive page reloads.
func cartSession(c echo.Context) string {
	return c.Request().Header.Get("X-Cart-Session")
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")

	requireSession := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cartSession(c) == "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing X-Cart-Session header"})
			}
			return next(c)
		}
	}
	p.Use(requireSession)

	// GET cart
	p.GET("", func(c echo.Context) error {
		cart, err := cs.Get(c.Request().Context(), cartSession(c))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD line
	p.POST("", func(c echo.Context) error {
		req := new(services.AddLineRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		lineID, err := cs.AddLine(c.Request().Context(), cartSession(c), *req)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"line_id": lineID})
	})

	// UPDATE quantity
	p.PUT("/:lineid", func(c echo.Context) error {
		req := new(setQuantityRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.SetQuantity(c.Request().Context(), cartSession(c), c.Param("lineid"), req.Quantity); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "updated"})
	})

	// REMOVE line
	p.DELETE("/:lineid", func(c echo.Context) error {
		if err := cs.Remove(c.Request().Context(), cartSession(c), c.Param("lineid")); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		if err := cs.Clear(c.Request().Context(), cartSession(c)); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	// CHECKOUT
	p.POST("/checkout", func(c echo.Context) error {
		req := new(services.CheckoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		resp, err := cs.Checkout(c.Request().Context(), cartSession(c), *req)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, resp)
	})
}
