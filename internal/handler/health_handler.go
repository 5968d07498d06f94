package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

var storageProviderName string

// SetProviderName records the active storage provider for health reports
func SetProviderName(name string) {
	storageProviderName = name
}

// HealthCheck handles the health check endpoint
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":           "ok",
		"storage_provider": storageProviderName,
		"time":             time.Now().Format(time.RFC3339),
	})
}

// Hello returns a simple welcome message
func Hello(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message": "Welcome to SlashAlert API",
		"version": "1.0.0",
	})
}
