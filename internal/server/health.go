package server

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthResponse is the JSON body of the health endpoint.
type HealthResponse struct {
	Status    string `json:"status"`
	Qdrant    string `json:"qdrant"`
	Timestamp string `json:"timestamp"`
}

// HealthChecker is the health-check dependency; the storage layer
// implements it via its Health method.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler reports service and vector-store health.
type HealthHandler struct {
	store HealthChecker
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(store HealthChecker) *HealthHandler {
	return &HealthHandler{store: store}
}

// Check handles GET /health. Returns 503 when Qdrant is unreachable.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
	defer cancel()

	response := HealthResponse{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}

	if err := h.store.Health(ctx); err != nil {
		response.Status = "unhealthy"
		response.Qdrant = "disconnected"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	response.Status = "healthy"
	response.Qdrant = "connected"
	return c.JSON(http.StatusOK, response)
}
