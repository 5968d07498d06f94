// Package handler exposes the REST surface. Every entity follows the
// same shape: list with optional query-parameter filters, get by id,
// count, create, update and delete, all scoped to the authenticated
// caller's tenant by the storage layer.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/middleware"
	"github.com/agrover-luv/SlashAlert-API/internal/repository"
	"github.com/agrover-luv/SlashAlert-API/internal/repository/factory"
)

var store factory.Provider

// Initialize wires the handlers to the configured storage provider
func Initialize(provider factory.Provider) {
	store = provider
}

// tenant extracts the caller identity set by the auth middleware
func tenant(c echo.Context) (string, error) {
	email, ok := middleware.TenantEmail(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing tenant context")
	}
	return email, nil
}

// storageError translates repository errors to HTTP responses
func storageError(c echo.Context, log *zap.Logger, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotImplemented):
		log.Warn("Operation not implemented by storage provider", zap.Error(err))
		return c.JSON(http.StatusNotImplemented, echo.Map{"error": "operation not supported by the configured storage provider"})
	case errors.Is(err, repository.ErrUpdateConflict):
		log.Warn("Update target not found for caller", zap.Error(err))
		return c.JSON(http.StatusConflict, echo.Map{"error": "record does not exist or belongs to another user"})
	default:
		log.Error("Storage operation failed", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage operation failed"})
	}
}
