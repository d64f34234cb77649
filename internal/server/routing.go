package server

import "github.com/labstack/echo/v4"

// InitRoutes registers the consultation endpoints on the echo instance.
func InitRoutes(e *echo.Echo, handler *Handler, health *HealthHandler) {
	e.POST("/search_accidents/", handler.SearchAccidents)
	e.POST("/ask_ai/", handler.AskAI)
	e.POST("/ask", handler.Ask)
	e.GET("/health", health.Check)
}
