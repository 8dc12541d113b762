package handler

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the posts resource. The session middleware runs on
// the create path only; listing never consults the resolver.
func RegisterRoutes(e *echo.Echo, h *Handler, session echo.MiddlewareFunc) {
	e.GET("/healthz", h.Health)

	api := e.Group("/api")
	api.GET("/posts", h.ListPosts)
	api.POST("/posts", h.CreatePost, session)
}
