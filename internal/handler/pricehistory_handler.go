package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
	"github.com/agrover-luv/SlashAlert-API/pkg/logger"
	"github.com/agrover-luv/SlashAlert-API/prometheus"
)

// ListPriceHistories handles retrieving price history with optional
// filtering. Product-scoped results come back newest first.
func ListPriceHistories(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("price_history", "list")
	ctx := c.Request().Context()
	repo := store.PriceHistories()

	if productID := c.QueryParam("product_id"); productID != "" {
		if c.QueryParam("latest") == "true" {
			latest, err := repo.GetLatestPrice(ctx, productID, email)
			if err != nil {
				return storageError(c, log, err)
			}
			return c.JSON(http.StatusOK, latest)
		}
		histories, err := repo.GetByProductID(ctx, productID, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, histories)
	}

	startStr, endStr := c.QueryParam("start"), c.QueryParam("end")
	if startStr != "" || endStr != "" {
		start, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start date"})
		}
		end, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid end date"})
		}
		histories, err := repo.GetByDateRange(ctx, start, end, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, histories)
	}

	if c.QueryParam("drops") == "true" {
		histories, err := repo.GetPriceDrops(ctx, email)
		if err != nil {
			return storageError(c, log, err)
		}
		return c.JSON(http.StatusOK, histories)
	}

	histories, err := repo.GetAll(ctx, email)
	if err != nil {
		return storageError(c, log, err)
	}
	log.Info("Price histories retrieved", zap.Int("count", len(histories)))
	return c.JSON(http.StatusOK, histories)
}

// GetPriceHistory handles retrieving a single price history entry by ID
func GetPriceHistory(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	history, err := store.PriceHistories().GetByID(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	if history == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "price history not found"})
	}
	return c.JSON(http.StatusOK, history)
}

// CountPriceHistories handles counting the caller's price history entries
func CountPriceHistories(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	count, err := store.PriceHistories().Count(c.Request().Context(), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"count": count})
}

// CreatePriceHistory handles creating a new price history entry
func CreatePriceHistory(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var history model.PriceHistory
	if err := c.Bind(&history); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	history.SetTenant(email)

	prometheus.RecordEntityOperation("price_history", "create")
	created, err := store.PriceHistories().Create(c.Request().Context(), &history)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// UpdatePriceHistory handles replacing an existing price history entry
func UpdatePriceHistory(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	var history model.PriceHistory
	if err := c.Bind(&history); err != nil {
		log.Error("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request data"})
	}
	history.SetEntityID(c.Param("id"))
	history.SetTenant(email)

	prometheus.RecordEntityOperation("price_history", "update")
	updated, err := store.PriceHistories().Update(c.Request().Context(), &history)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// DeletePriceHistory handles deleting a price history entry
func DeletePriceHistory(c echo.Context) error {
	log := logger.FromEcho(c)
	email, err := tenant(c)
	if err != nil {
		return err
	}

	prometheus.RecordEntityOperation("price_history", "delete")
	deleted, err := store.PriceHistories().Delete(c.Request().Context(), c.Param("id"), email)
	if err != nil {
		return storageError(c, log, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"deleted": deleted})
}
