package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Health serves GET /api/v1/health.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":    "success",
		"message":   "API is healthy",
		"timestamp": time.Now().UTC(),
	})
}
