package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// ListRetailers handles retrieving all retailers with optional filtering
func ListRetailers(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("retailer", "list")
	ctx := c.Request().Context()
	repo := store.Retailers()

	if name := c.QueryParam("name"); name != "" {
		retailer, err := repo.GetByName(ctx, name, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, retailer)
	}

	if daysStr := c.QueryParam("min_guarantee_days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid min_guarantee_days"})
		}
		retailers, err := repo.GetByPriceGuaranteeDays(ctx, days, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, retailers)
	}

	retailers, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Retailers retrieved", zap.Int("count", len(retailers)))
	return c.JSON(http.StatusOK, retailers)
}

// GetRetailer handles retrieving a single retailer by ID
func GetRetailer(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	retailer, err := store.Retailers().GetByID(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	if retailer == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "retailer not found"})
	}
	return c.JSON(http.StatusOK, retailer)
}

// CountRetailers handles counting the caller's retailers
func CountRetailers(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.Retailers().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreateRetailer handles creating a new retailer
func CreateRetailer(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var retailer model.Retailer
	if err := c.Bind(&retailer); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	retailer.SetTenant(email)

	prometheus.RecordEntityOperation("retailer", "create")
	created, err := store.Retailers().Create(c.Request().Context(), &retailer)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdateRetailer handles replacing an existing retailer
func UpdateRetailer(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var retailer model.Retailer
	if err := c.Bind(&retailer); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	retailer.SetEntityID(c.Param("id"))
	retailer.SetTenant(email)

	prometheus.RecordEntityOperation("retailer", "update")
	updated, err := store.Retailers().Update(c.Request().Context(), &retailer)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteRetailer handles deleting a retailer
func DeleteRetailer(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("retailer", "delete")
	deleted, err := store.Retailers().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
